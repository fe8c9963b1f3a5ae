// Package embedstore provides an fs.FS-based prompt store that parses all
// YAML prompt files at construction (eager). Use New with an embed.FS or
// os.DirFS and a root path; Get performs an O(1) lookup by id.
package embedstore
