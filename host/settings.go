// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/ondrik/redmars/mars"
)

// settings exposes a BattleParameters value through the "set" command,
// keyed by case-insensitive, prefix-matched field name.
type settings struct {
	params *mars.BattleParameters
}

func newSettings(p *mars.BattleParameters) *settings {
	return &settings{params: p}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(mars.BattleParameters{})
	settingsFields = make([]settingsField, t.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s.params).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		line := fmt.Sprintf("    %-18s %v", f.name, v.Interface())
		fmt.Fprintf(w, "%-34s (%s)\n", line, f.doc)
	}
}

func (s *settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

func (s *settings) Set(key, value string) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	field := reflect.ValueOf(s.params).Elem().Field(f.index)
	switch f.kind {
	case reflect.Bool:
		b, err := stringToBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int:
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return errors.New("invalid integer value")
		}
		field.SetInt(int64(n))
	default:
		return fmt.Errorf("setting '%s' has an unsupported type", key)
	}
	return nil
}
