// Package file provides the file-based configuration adapter.
// Settings live in a TOML file; environment variables override
// file values so container deployments can configure the server
// without mounting a config file.
package file
