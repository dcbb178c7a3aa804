package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestNewConfigStore_Seeded(t *testing.T) {
	store := NewConfigStore(
		map[string]any{"match.policy": "first"},
		map[string]any{"match.policy": "longest", "directory.page_size": 25},
	)

	assert.Equal(t, "longest", store.GetString("match.policy"))
	assert.Equal(t, 25, store.GetInt("directory.page_size"))
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("directory.table", "Portals-dev")
	require.NoError(t, err)

	val, ok := store.Get("directory.table")
	assert.True(t, ok)
	assert.Equal(t, "Portals-dev", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("match.exclude", "Card Linked"))
	require.NoError(t, store.Set("match.exclude", "Promo"))

	assert.Equal(t, "Promo", store.GetString("match.exclude"))
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"str":   "value",
		"empty": "",
		"num":   42,
	})

	assert.Equal(t, "value", store.GetString("str"))
	assert.Equal(t, "", store.GetString("empty"))
	assert.Equal(t, "", store.GetString("num"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"int":     10,
		"int64":   int64(20),
		"float64": float64(30),
		"string":  "40",
	})

	assert.Equal(t, 10, store.GetInt("int"))
	assert.Equal(t, 20, store.GetInt("int64"))
	assert.Equal(t, 30, store.GetInt("float64"))
	assert.Equal(t, 0, store.GetInt("string"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore(map[string]any{
		"yes":    true,
		"no":     false,
		"string": "true",
	})

	assert.True(t, store.GetBool("yes"))
	assert.False(t, store.GetBool("no"))
	assert.False(t, store.GetBool("string"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore(map[string]any{"key": "value"})

	require.NoError(t, store.Load())
	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency_SetAndGet(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i)
			_ = store.Set(key, i)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("key%d", i)))
	}
}
