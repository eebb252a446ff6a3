package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Reorganize asset dependencies into category folders"
	MsgOrganizeShort   = "Relocate a root container's dependencies beside it"
	MsgDepsShort       = "List the dependency closure of a root container"
	MsgGenConfigShort  = "Output the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgTopicsShort     = "Display available documentation topics"

	// Status messages
	MsgFallbackWarning = "Warning: no repository root configured, using current directory: %s\n"

	// Error messages
	MsgErrInitPaths  = "failed to locate repository root: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrOrganize   = "organize failed: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagRoot    = "Repository root (default: $ASSORT_REPO_ROOT, the enclosing git repository, or the current directory)"
	MsgFlagNoColor = "Disable colored output"
)

// Long messages
const (
	MsgRootLong = `assort reorganizes the dependencies of a root container asset. It
collects everything the root transitively references, copies the
qualifying dependencies into category subfolders next to the root, and
rewrites every affected reference to point at the relocated copies.

Originals are never modified or deleted; only the root container file
itself is rewritten.`

	MsgOrganizeLong = `Organize collects the dependency closure of the given root container,
copies qualifying dependencies into category subfolders beside the
root (Materials/, Textures/, Meshes/, ...), and rewrites references so
the root's graph points at the relocated copies.

Code assets, assets outside the repository, and assets without a
configured category keep their original references. Item-level copy
failures are reported as warnings and do not abort the run.`

	MsgDepsLong = `Deps lists every asset the root container transitively references,
together with the verdict organize would apply to it: the destination
for relocatable assets, or the reason an asset would be left alone.`

	MsgGenConfigLong = `Gen-config prints the effective configuration, which is the built-in
defaults merged with the repository's .assort.toml if one exists. Pipe
it into a file to start a repository-local configuration.`
)
