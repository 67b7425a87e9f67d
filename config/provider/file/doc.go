// Package file provides a file-based Provider for the config package.
//
// Files are discovered under a base directory (default "<cwd>/config") by
// naming convention. For environment "production" the candidates are, in
// merge order:
//
//	default.<ext>
//	production.<ext>
//	local.<ext>
//	local-production.<ext>
//
// For every base name each registered extension is tried in registration
// order (json, yaml, yml, toml, json5 by default). Every file found is parsed
// and deep-merged on top of the previous ones, so later files win.
//
// Usage:
//
//	provider := file.NewProvider(file.WithBasePath("/etc/myapp"))
//	resolver.AddProvider(provider, 100)
//
// Error Handling:
//   - Missing and empty files are skipped
//   - A candidate path that is a directory fails with ErrPathIsDirectory
//   - A file whose top-level value is not an object fails with a *FormatError
//     wrapping ErrNotObject
//   - An extension registered without a parser fails with a *FormatError
//     wrapping ErrParserUnavailable
package file
