package main

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/delaneyj/livesignals/cmd/modelgen/templates"
	"gopkg.in/yaml.v3"
)

const defaultPackage = "models"

var (
	ErrNoModels     = errors.New("no models")
	ErrNoProperties = errors.New("model has no properties")
	ErrDuplicate    = errors.New("duplicate name")
	ErrBadName      = errors.New("invalid name")
	ErrMissingType  = errors.New("missing type")
)

func load(raw []byte) (*templates.File, error) {
	f := &templates.File{}
	if err := yaml.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if f.Package == "" {
		f.Package = defaultPackage
	}
	return f, nil
}

func validate(f *templates.File) error {
	if !token.IsIdentifier(f.Package) {
		return fmt.Errorf("package %q: %w", f.Package, ErrBadName)
	}
	if len(f.Models) == 0 {
		return ErrNoModels
	}

	models := map[string]bool{}
	for _, m := range f.Models {
		if !exported(m.Name) {
			return fmt.Errorf("model %q: %w", m.Name, ErrBadName)
		}
		if models[m.Name] {
			return fmt.Errorf("model %q: %w", m.Name, ErrDuplicate)
		}
		models[m.Name] = true

		props := m.Properties()
		if len(props) == 0 {
			return fmt.Errorf("model %s: %w", m.Name, ErrNoProperties)
		}
		names := map[string]bool{}
		for _, p := range props {
			if !exported(p.Name) || token.IsKeyword(p.FieldName()) {
				return fmt.Errorf("%s.%s: %w", m.Name, p.Name, ErrBadName)
			}
			if names[p.Name] {
				return fmt.Errorf("%s.%s: %w", m.Name, p.Name, ErrDuplicate)
			}
			names[p.Name] = true
			if p.Type == "" {
				return fmt.Errorf("%s.%s: %w", m.Name, p.Name, ErrMissingType)
			}
		}
	}
	return nil
}

func generate(f *templates.File) (string, error) {
	if err := validate(f); err != nil {
		return "", err
	}
	return templates.ModelFile(f), nil
}

func exported(name string) bool {
	return token.IsIdentifier(name) && token.IsExported(name)
}
