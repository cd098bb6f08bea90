package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/encode"
	"github.com/confpatch/confpatch/ir"
)

const sceneDoc = `<Scene>
  <Entities>
    <Entity>
      <Name>alpha</Name>
    </Entity>
    <Entity>
      <Name>beta</Name>
    </Entity>
  </Entities>
</Scene>`

func TestEnsureSectionExisting(t *testing.T) {
	root := mustParse(t, sceneDoc)
	node, ok := EnsureSection(root, "Scene.Entities", nil)
	require.True(t, ok)
	assert.Same(t, root.Child("Scene").Child("Entities"), node)
	// Walking existing segments edits nothing.
	assert.Equal(t, sceneDoc, encode.MustString(root))
}

func TestEnsureSectionAppends(t *testing.T) {
	root := mustParse(t, sceneDoc)
	node, ok := EnsureSection(root, "Scene.Settings", nil)
	require.True(t, ok)
	assert.Equal(t, "Settings", node.Tag)
	assert.Same(t, node, root.Child("Scene").Child("Settings"))
}

func TestEnsureSectionAnchoredInsert(t *testing.T) {
	root := mustParse(t, sceneDoc)
	node, ok := EnsureSection(root, "Scene.Entities.Spawner", []Insert{
		{}, {}, {Position: "alpha:after", Defaults: ir.Map(ir.Field("Rate", ir.Int(5)))},
	})
	require.True(t, ok)
	require.NotNil(t, node)
	assert.Equal(t, `<Scene>
  <Entities>
    <Entity>
      <Name>alpha</Name>
    </Entity>
    <Spawner>
      <Rate>5</Rate>
    </Spawner>
    <Entity>
      <Name>beta</Name>
    </Entity>
  </Entities>
</Scene>`, encode.MustString(root))
}

func TestEnsureSectionAnchorSpellings(t *testing.T) {
	for _, pos := range []string{"alpha:after", "after:alpha"} {
		root := mustParse(t, sceneDoc)
		node, ok := EnsureSection(root, "Scene.Entities.Spawner", []Insert{
			{}, {}, {Position: pos},
		})
		require.True(t, ok, "position %q", pos)
		entities := root.Child("Scene").Child("Entities")
		els := entities.Elements()
		require.Len(t, els, 3)
		assert.Same(t, node, els[1], "position %q", pos)
	}
}

func TestEnsureSectionMissingAnchorCascades(t *testing.T) {
	root := mustParse(t, sceneDoc)
	rec := &diag.Recorder{}
	node, ok := EnsureSection(root, "Scene.Entities.Ghost.Sub", []Insert{
		{}, {}, {Position: "nosuch:after"}, {},
	}, WithSink(rec))
	assert.False(t, ok)
	assert.Nil(t, node)
	require.Len(t, rec.Errors(), 2)
	assert.Equal(t, "insertion anchor not found", rec.Errors()[0].Msg)
	assert.Equal(t, "cannot create section under missing parent", rec.Errors()[1].Msg)
	// The skipped segment was not created.
	assert.Nil(t, root.Child("Scene").Child("Entities").Child("Ghost"))
}

func TestEnsureSectionTagAnchor(t *testing.T) {
	root := mustParse(t, "<Root>\n  <First/>\n  <Last/>\n</Root>")
	node, ok := EnsureSection(root, "Root.Mid", []Insert{
		{}, {Position: "First:after"},
	})
	require.True(t, ok)
	els := root.Child("Root").Elements()
	require.Len(t, els, 3)
	assert.Same(t, node, els[1])
	assert.Equal(t, "Mid", els[1].Tag)
}
