package fsmcodec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// EncodeJSON serializes a definition DTO as JSON.
func EncodeJSON(dto fsm.DefinitionDTO) ([]byte, error) {
	data, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode definition as json: %w", err)
	}
	return data, nil
}

// DecodeJSON deserializes a definition DTO from JSON.
func DecodeJSON(data []byte) (fsm.DefinitionDTO, error) {
	var dto fsm.DefinitionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return fsm.DefinitionDTO{}, fmt.Errorf("decode definition from json: %w", err)
	}
	return dto, nil
}

// EncodeYAML serializes a definition DTO as YAML.
func EncodeYAML(dto fsm.DefinitionDTO) ([]byte, error) {
	data, err := yaml.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("encode definition as yaml: %w", err)
	}
	return data, nil
}

// DecodeYAML deserializes a definition DTO from YAML.
func DecodeYAML(data []byte) (fsm.DefinitionDTO, error) {
	var dto fsm.DefinitionDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return fsm.DefinitionDTO{}, fmt.Errorf("decode definition from yaml: %w", err)
	}
	return dto, nil
}
