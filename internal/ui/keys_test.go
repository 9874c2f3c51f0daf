package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futsal/internal/domain"
)

func TestEveryActionHasKeys(t *testing.T) {
	for _, a := range domain.Actions {
		def := GetKeyDefinition(a.Name)
		require.NotNil(t, def, a.Name)
		assert.NotEmpty(t, def.Defaults, a.Name)
	}
	assert.Len(t, AllKeyDefinitions(), len(domain.Actions))
}

func TestKeysAreUnique(t *testing.T) {
	owner := map[string]string{}
	for _, def := range AllKeyDefinitions() {
		for _, k := range def.Defaults {
			if prev, ok := owner[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, prev, def.Name)
			}
			owner[k] = def.Name
		}
	}
}

func TestGetKeyDefinitionUnknown(t *testing.T) {
	assert.Nil(t, GetKeyDefinition("nope"))
}

func TestNewKeyMapHelp(t *testing.T) {
	keys := NewKeyMap()
	assert.Equal(t, "tab/p", keys.NextPeriod.Help().Key)
	assert.Len(t, keys.All(), len(domain.Actions))
}
