// Package filestore provides a directory-based prompt store that loads YAML
// prompt files on demand (lazy) and caches them by id. Use New to create a
// Store; Get resolves id to {dir}/{id}.yml or {dir}/{id}.yaml, and
// Invalidate/InvalidateAll force a reload on the next access.
package filestore
