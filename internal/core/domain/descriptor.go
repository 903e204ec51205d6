package domain

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// DefaultDescriptorFile is the descriptor filename written when no output
// path is given.
const DefaultDescriptorFile = "datapackage.json"

// FallbackPackageName is used when no package name can be derived from the
// data directory.
const FallbackPackageName = "defaultdata-package"

// StateFile is the name of the package state file written next to the
// descriptor.
const StateFile = ".defaultdata.state.json"

// ResourceProfile is the Frictionless profile every packaged resource uses.
const ResourceProfile = "tabular-data-resource"

// Descriptor is the aggregate data package document. Field names and
// structure follow the Frictionless Data Package schema and are a fixed
// external contract.
type Descriptor struct {
	Name      string     `json:"name"`
	Resources []Resource `json:"resources"`
}

// Resource describes one data file and its metadata within the descriptor.
type Resource struct {
	Profile   string    `json:"profile"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Format    string    `json:"format"`
	Mediatype string    `json:"mediatype"`
	Encoding  string    `json:"encoding"`
	Bytes     int64     `json:"bytes"`
	Hash      string    `json:"hash"`
	Schema    Schema    `json:"schema"`
	Dialect   *Dialect  `json:"dialect,omitempty"`
	Licenses  []License `json:"licenses"`
}

// Schema holds the field definitions of one resource.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Field is one column definition: a name plus the attributes taken from the
// sidecar metadata file.
type Field struct {
	Name  string
	Attrs map[string]any
}

// MarshalJSON flattens the field into a single object containing the name
// and all attributes. encoding/json sorts the keys, keeping the output
// deterministic.
func (f Field) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(f.Attrs)+1)
	for k, v := range f.Attrs {
		flat[k] = v
	}
	flat["name"] = f.Name
	return json.Marshal(flat)
}

// UnmarshalJSON restores a field from its flattened object form.
func (f *Field) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if name, ok := flat["name"].(string); ok {
		f.Name = name
	}
	delete(flat, "name")
	f.Attrs = flat
	return nil
}

// Dialect describes how a delimited data file is laid out.
type Dialect struct {
	Header           bool   `json:"header"`
	HeaderRows       []int  `json:"headerRows"`
	HeaderJoin       string `json:"headerJoin"`
	CommentChar      string `json:"commentChar"`
	Delimiter        string `json:"delimiter"`
	LineTerminator   string `json:"lineTerminator"`
	QuoteChar        string `json:"quoteChar"`
	DoubleQuote      bool   `json:"doubleQuote"`
	SkipInitialSpace bool   `json:"skipInitialSpace"`
}

// License is a license entry attached to every resource.
type License struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// DefaultLicenses returns the CC0 license list the convention attaches to
// every packaged resource.
func DefaultLicenses() []License {
	return []License{{
		Name:  "CC0",
		Title: "Creative Commons CC0",
		Path:  "https://creativecommons.org/publicdomain/zero/1.0/",
	}}
}

// FormatOf derives the descriptor format from a file name: the lowercased
// extension without the dot, or an empty string for extensionless files.
func FormatOf(file string) string {
	ext := filepath.Ext(file)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

var mediatypes = map[string]string{
	"csv":  "text/csv",
	"tsv":  "text/tab-separated-values",
	"json": "application/json",
	"txt":  "text/plain",
	"xml":  "application/xml",
}

// MediatypeOf maps a format to its media type, falling back to a generic
// binary type for unknown formats.
func MediatypeOf(format string) string {
	if mt, ok := mediatypes[format]; ok {
		return mt
	}
	return "application/octet-stream"
}

var delimiters = map[string]string{
	"csv": ",",
	"tsv": "\t",
}

// DialectFor returns the dialect for delimited formats and nil for
// everything else.
func DialectFor(format string) *Dialect {
	delim, ok := delimiters[format]
	if !ok {
		return nil
	}
	return &Dialect{
		Header:           true,
		HeaderRows:       []int{1},
		HeaderJoin:       " ",
		CommentChar:      "#",
		Delimiter:        delim,
		LineTerminator:   "\r\n",
		QuoteChar:        `"`,
		DoubleQuote:      true,
		SkipInitialSpace: false,
	}
}
