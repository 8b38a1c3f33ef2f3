package lookup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStakeSetBasic(t *testing.T) {
	addresses := []string{
		"stake1u8j40zgr2gy4788kl54h6x3gu0pukq5lfr8nflufpg5dzaskqlx2l",
		"stake1uyjwjptgj7wcvqf0rmjfhtc7n28rut6fjha9t8kqeegklsc9mz5mt",
		"stake1uy9g2x6459a0tvavs7k2rfn00vgyhyxshvajwuysnc0xqwcmjlk4n",
	}
	s := NewStakeSet(addresses)

	assert.Equal(t, 3, s.Len())
	for _, addr := range addresses {
		assert.True(t, s.Contains(addr), addr)
	}
	assert.False(t, s.Contains("stake1notinset"))
	assert.False(t, s.Contains(""))
}

func TestStakeSetCollapsesDuplicates(t *testing.T) {
	s := NewStakeSet([]string{"stake1abc", "stake1abc", "stake1def"})
	assert.Equal(t, 2, s.Len())
}

func TestStakeSetEmpty(t *testing.T) {
	s := NewStakeSet(nil)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("stake1anything"))
}

func TestStakeSetNoFalsePositivesOnExactCheck(t *testing.T) {
	var addresses []string
	for i := 0; i < 10_000; i++ {
		addresses = append(addresses, fmt.Sprintf("stake1u%056d", i))
	}
	s := NewStakeSet(addresses)

	for i := 10_000; i < 11_000; i++ {
		assert.False(t, s.Contains(fmt.Sprintf("stake1u%056d", i)))
	}
}
