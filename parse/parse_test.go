package parse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confpatch/confpatch/ir"
)

func TestParseTree(t *testing.T) {
	src := `<Root>
  <Item kind="a">
    <Name> hero </Name>
  </Item>
  <Empty/>
</Root>`
	root, err := Parse([]byte(src))
	require.NoError(t, err)

	el := root.Child("Root")
	require.NotNil(t, el)
	item := el.Child("Item")
	require.NotNil(t, item)
	assert.Equal(t, `<Item kind="a">`, item.RawOpen)
	assert.Equal(t, "hero", item.Child("Name").Value())

	empty := el.Child("Empty")
	require.NotNil(t, empty)
	assert.True(t, empty.SelfClose)
}

func TestParseColumns(t *testing.T) {
	src := "<Root>\n    <Item>x</Item>\n</Root>"
	root, err := Parse([]byte(src))
	require.NoError(t, err)
	item := root.Child("Root").Child("Item")
	require.NotNil(t, item)
	assert.Equal(t, 4, item.OpenCol)
	assert.Equal(t, 4+len("<Item>"), item.ContentCol)
}

func TestParseMultiRootWrapping(t *testing.T) {
	src := "<A/>\n<B/>"
	root, err := Parse([]byte(src), ParseMultiRoot())
	require.NoError(t, err)
	wrapper := root.Child(SyntheticTag)
	require.NotNil(t, wrapper)
	assert.True(t, wrapper.Synthetic)
	assert.NotNil(t, wrapper.Child("A"))
	assert.NotNil(t, wrapper.Child("B"))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"mismatched close", "<A><B></A></B>"},
		{"unclosed", "<A><B></B>"},
		{"unmatched close", "text</A>"},
		{"unterminated tag", "<A"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ir.ErrParse))
		})
	}
}
