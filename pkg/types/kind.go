package types

// Kind identifies what sort of data a resource holds
type Kind string

const (
	// KindPrefab is a composite root container owning component sub-objects
	KindPrefab Kind = "prefab"

	// KindComponent is a component-like sub-object inside a container
	KindComponent Kind = "component"

	// KindMaterial is a compound shading resource with texture binding slots
	KindMaterial Kind = "material"

	// KindTexture is an image resource
	KindTexture Kind = "texture"

	// KindMesh is geometry data
	KindMesh Kind = "mesh"

	// KindModel is an importer-backed geometry container
	KindModel Kind = "model"

	// KindAnimator is an animation-control graph
	KindAnimator Kind = "animator"

	// KindAnimation is a motion clip
	KindAnimation Kind = "animation"

	// KindAudio is a sound resource
	KindAudio Kind = "audio"

	// KindPhysicsMaterial is a collision-response profile
	KindPhysicsMaterial Kind = "physicsmaterial"

	// KindFont is a glyph resource
	KindFont Kind = "font"

	// KindScript is code/behavior, never relocated
	KindScript Kind = "script"

	// KindShader is shader code, never relocated
	KindShader Kind = "shader"

	// KindAssembly is a compiled code unit, never relocated
	KindAssembly Kind = "assembly"
)

// codeKinds are behavior rather than data and are excluded from relocation
var codeKinds = map[Kind]bool{
	KindScript:   true,
	KindShader:   true,
	KindAssembly: true,
}

// IsCode reports whether the kind is code/behavior rather than data
func (k Kind) IsCode() bool {
	return codeKinds[k]
}
