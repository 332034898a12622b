// Package contracts validates vendor payloads against embedded JSON schemas
// before they are decoded into local types.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema names.
const (
	ApolloOrganization = "apollo-organization"
	ApolloPeople       = "apollo-people"
	FreepikSearch      = "freepik-search"
	FreepikDownload    = "freepik-download"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var compiledSchemas = mustCompile()

// DecodeError reports a vendor payload that is not valid JSON or does not match its schema.
type DecodeError struct {
	Schema string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Schema, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func mustCompile() map[string]*jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	var names []string
	err := fs.WalkDir(schemaFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		raw, err := schemaFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(p, bytes.NewReader(raw)); err != nil {
			return fmt.Errorf("add schema resource %s: %w", p, err)
		}
		names = append(names, p)
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("load vendor schemas: %v", err))
	}

	compiled := make(map[string]*jsonschema.Schema, len(names))
	for _, p := range names {
		schema, err := compiler.Compile(p)
		if err != nil {
			panic(fmt.Sprintf("compile vendor schema %s: %v", p, err))
		}
		compiled[strings.TrimSuffix(path.Base(p), ".json")] = schema
	}
	return compiled
}

// Validate checks body against the named schema.
func Validate(name string, body []byte) error {
	schema, ok := compiledSchemas[name]
	if !ok {
		return fmt.Errorf("schema %q not registered", name)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return &DecodeError{Schema: name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.Validate(v); err != nil {
		return &DecodeError{Schema: name, Err: err}
	}
	return nil
}

// Decode validates body against the named schema and unmarshals it into dst.
func Decode(name string, body []byte, dst any) error {
	if err := Validate(name, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &DecodeError{Schema: name, Err: err}
	}
	return nil
}
