package cpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "52998224725", Normalize("529.982.247-25"))
	assert.Equal(t, "52998224725", Normalize(" 529 982 247 25 "))
	assert.Equal(t, "52998224725", Normalize("52998224725"))
	assert.Equal(t, "", Normalize("abc"))
}

func TestValid(t *testing.T) {
	t.Run("accepts known good documents", func(t *testing.T) {
		assert.True(t, Valid("52998224725"))
		assert.True(t, Valid("11144477735"))
	})

	t.Run("rejects checksum violations", func(t *testing.T) {
		assert.False(t, Valid("52998224726"))
		assert.False(t, Valid("52998224735"))
		assert.False(t, Valid("12345678901"))
	})

	t.Run("rejects same-digit sequences", func(t *testing.T) {
		assert.False(t, Valid("00000000000"))
		assert.False(t, Valid("11111111111"))
		assert.False(t, Valid("99999999999"))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		assert.False(t, Valid(""))
		assert.False(t, Valid("5299822472"))
		assert.False(t, Valid("529982247251"))
		assert.False(t, Valid("5299822472X"))
		assert.False(t, Valid("529.982.247-25"))
	})
}

func TestValidatorImplementsCheck(t *testing.T) {
	v := Validator{}
	assert.True(t, v.Valid("52998224725"))
	assert.False(t, v.Valid("52998224726"))
}
