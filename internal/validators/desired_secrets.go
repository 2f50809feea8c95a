// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators parses and validates the declared secret list before
// any network call is made.
//
// The input contract is strict: a JSON array of objects, each carrying
// exactly the string fields "name" and "value". Anything else — wrong top
// level, missing field, wrong field type, invalid secret name, duplicate
// name — fails with an error naming the offending array index, so the
// operator can fix the declaration without guessing.
package validators

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/gh-secret-sync/models"
)

// secretNamePattern follows the remote store's naming rules: alphanumeric
// and underscores only, must not start with a digit.
var secretNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedNamePrefix is rejected by the remote store; catching it locally
// turns a per-item API failure into a parse-time error.
const reservedNamePrefix = "GITHUB_"

// rawSecret mirrors one input entry with pointer fields so a missing field
// is distinguishable from an empty string.
type rawSecret struct {
	Name  *string `json:"name"`
	Value *string `json:"value"`
}

// ParseDesiredSecrets validates raw — a JSON array of {"name","value"}
// objects — into the declared secret list. The list keeps input order;
// names are guaranteed unique.
//
// An empty array is valid and means "no secrets": a run with it deletes
// every remote secret.
//
// Duplicate names are rejected rather than resolved last-wins, so a
// copy-paste slip in the declaration cannot silently drop a value.
func ParseDesiredSecrets(raw string) (models.DesiredSecrets, error) {
	var entries []rawSecret
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSecretsJSON, err)
	}

	desired := make(models.DesiredSecrets, 0, len(entries))
	seen := make(map[string]int, len(entries))

	for i, entry := range entries {
		if entry.Name == nil {
			return nil, fmt.Errorf("secret at index %d: %w", i, ErrMissingNameField)
		}
		if entry.Value == nil {
			return nil, fmt.Errorf("secret at index %d (%q): %w", i, *entry.Name, ErrMissingValueField)
		}

		name := *entry.Name
		if err := validateSecretName(name); err != nil {
			return nil, fmt.Errorf("secret at index %d: %w", i, err)
		}

		if firstIdx, dup := seen[name]; dup {
			return nil, fmt.Errorf("secret at index %d duplicates %q declared at index %d: %w",
				i, name, firstIdx, ErrDuplicateSecretName)
		}
		seen[name] = i

		desired = append(desired, models.DesiredSecret{Name: name, Value: *entry.Value})
	}

	return desired, nil
}

func validateSecretName(name string) error {
	if name == "" {
		return ErrEmptySecretName
	}
	if !secretNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidSecretName, name)
	}
	if strings.HasPrefix(strings.ToUpper(name), reservedNamePrefix) {
		return fmt.Errorf("%w: %q", ErrReservedSecretName, name)
	}
	return nil
}
