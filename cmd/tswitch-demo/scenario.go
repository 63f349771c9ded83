// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// scenario is the set of runtime values to dispatch.
// Keys, if non-empty, replaces the default key sequence.
type scenario struct {
	Keys   []int
	Values []int
}

// scenarioFile is the YAML layout:
//
//	keys: [11, 22, 25, 33, 55]
//	scenarios:
//	  - m: 25
//	  - m: 33
type scenarioFile struct {
	Keys      []int `yaml:"keys"`
	Scenarios []struct {
		M int `yaml:"m"`
	} `yaml:"scenarios"`
}

var errNoScenarios = errors.New("no scenarios")

// defaultScenario picks m = 25 without positional arguments, 33 otherwise.
func defaultScenario(nargs int) scenario {
	m := 25
	if nargs > 0 {
		m = 33
	}
	return scenario{Values: []int{m}}
}

func loadScenarioFile(path string) (scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return scenario{}, err
	}
	defer f.Close()
	sc, err := loadScenarios(f)
	if err != nil {
		return scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func loadScenarios(r io.Reader) (scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file scenarioFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return scenario{}, errNoScenarios
		}
		return scenario{}, fmt.Errorf("yaml decode: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return scenario{}, errNoScenarios
	}
	sc := scenario{Keys: file.Keys, Values: make([]int, len(file.Scenarios))}
	for i, s := range file.Scenarios {
		sc.Values[i] = s.M
	}
	return sc, nil
}
