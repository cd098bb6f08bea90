package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/encode"
	"github.com/confpatch/confpatch/ir"
)

func TestSetDefaultsMerge(t *testing.T) {
	root := mustParse(t, "<Config>\n  <Name>Foo</Name>\n</Config>")
	cfg := root.Child("Config")
	ok := Set(cfg, ir.Map(ir.Field("A", ir.Int(5))),
		Defaults(ir.Map(ir.Field("A", ir.Int(0)), ir.Field("B", ir.Int(1)))))
	assert.True(t, ok)
	assert.Equal(t,
		"<Config>\n  <Name>Foo</Name>\n  <A>5</A>\n  <B>1</B>\n</Config>",
		encode.MustString(root))
}

func TestSetIdempotent(t *testing.T) {
	root := mustParse(t, "<Config>\n  <Name>Foo</Name>\n</Config>")
	cfg := root.Child("Config")
	values := ir.Map(
		ir.Field("A", ir.Int(5)),
		ir.Field("Nested", ir.Map(ir.Field("X", ir.String("on")))),
	)
	require.True(t, Set(cfg, values))
	once := encode.MustString(root)
	require.True(t, Set(cfg, values))
	assert.Equal(t, once, encode.MustString(root))
}

func TestSetScalarOverwrite(t *testing.T) {
	root := mustParse(t, "<A>\n  <V>old</V>\n</A>")
	require.True(t, Set(root.Child("A"), ir.Map(ir.Field("V", ir.String("new")))))
	assert.Equal(t, "<A>\n  <V>new</V>\n</A>", encode.MustString(root))
}

func TestSetScalarOnElementWithChildrenFailsKeyOnly(t *testing.T) {
	root := mustParse(t, "<Config>\n  <Sub>\n    <X/>\n  </Sub>\n</Config>")
	cfg := root.Child("Config")
	rec := &diag.Recorder{}
	ok := Set(cfg, ir.Map(
		ir.Field("Sub", ir.String("x")),
		ir.Field("Ok", ir.String("1")),
	), WithSink(rec))
	assert.False(t, ok)
	require.Len(t, rec.Errors(), 1)
	// The failed key did not abort its sibling.
	require.NotNil(t, cfg.Child("Ok"))
	assert.Equal(t, "1", cfg.Child("Ok").Value())
	// The multi-child element is untouched.
	require.NotNil(t, cfg.Child("Sub").Child("X"))
}

func TestSetDottedTagAliasing(t *testing.T) {
	root := mustParse(t, "<M>\n  <Render.Mode>1</Render.Mode>\n</M>")
	require.True(t, Set(root.Child("M"), ir.Map(ir.Field("Render_Mode", ir.String("2")))))
	assert.Equal(t, "<M>\n  <Render.Mode>2</Render.Mode>\n</M>", encode.MustString(root))
}

func TestSetNestedCreation(t *testing.T) {
	root := mustParse(t, "<Config></Config>")
	cfg := root.Child("Config")
	require.True(t, Set(cfg, ir.Map(
		ir.Field("Outer", ir.Map(ir.Field("Inner", ir.String("v")))),
	)))
	inner := cfg.Child("Outer").Child("Inner")
	require.NotNil(t, inner)
	assert.Equal(t, "v", inner.Value())
}

func TestSetNonScalarDefaultAppliedOnCreate(t *testing.T) {
	root := mustParse(t, "<Config></Config>")
	cfg := root.Child("Config")
	ok := Set(cfg, ir.Map(ir.Field("Sub", ir.Map())),
		Defaults(ir.Map(ir.Field("Sub", ir.Map(ir.Field("Mode", ir.String("auto")))))))
	assert.True(t, ok)
	sub := cfg.Child("Sub")
	require.NotNil(t, sub)
	assert.Equal(t, "auto", sub.Child("Mode").Value())
}

func TestSetSequenceRejectedWithoutVectors(t *testing.T) {
	root := mustParse(t, "<E></E>")
	rec := &diag.Recorder{}
	ok := Set(root.Child("E"), ir.Map(
		ir.Field("Position", ir.Seq(ir.Int(1), ir.Int(2))),
	), WithSink(rec))
	assert.False(t, ok)
	assert.Len(t, rec.Errors(), 1)
	assert.Nil(t, root.Child("E").Child("Position"))
}

func TestSetVector(t *testing.T) {
	root := mustParse(t, "<Entity>\n  <Name>E</Name>\n</Entity>")
	e := root.Child("Entity")
	ok := Set(e, ir.Map(
		ir.Field("Position", ir.Seq(ir.Int(1), ir.Int(2), ir.Int(3))),
	), Vectors())
	assert.True(t, ok)
	assert.Equal(t, "1.000000", e.Child("Position.x").Value())
	assert.Equal(t, "2.000000", e.Child("Position.y").Value())
	assert.Equal(t, "3.000000", e.Child("Position.z").Value())
	assert.Nil(t, e.Child("Position.w"))
}

func TestSetVectorDropsBeyondW(t *testing.T) {
	root := mustParse(t, "<Entity></Entity>")
	e := root.Child("Entity")
	rec := &diag.Recorder{}
	ok := Set(e, ir.Map(
		ir.Field("Q", ir.Seq(ir.Float(0.5), ir.Int(1), ir.Int(2), ir.Int(3), ir.Int(4))),
	), Vectors(), WithSink(rec))
	assert.True(t, ok)
	assert.Equal(t, "0.500000", e.Child("Q.x").Value())
	assert.Equal(t, "3.000000", e.Child("Q.w").Value())
	assert.Len(t, rec.Warns(), 1)
}

func TestSetVectorOverwritesExisting(t *testing.T) {
	root := mustParse(t, "<E>\n  <P.x>9.000000</P.x>\n  <P.y>9.000000</P.y>\n</E>")
	e := root.Child("E")
	require.True(t, Set(e, ir.Map(ir.Field("P", ir.Seq(ir.Int(1), ir.Int(2)))), Vectors()))
	assert.Equal(t, "<E>\n  <P.x>1.000000</P.x>\n  <P.y>2.000000</P.y>\n</E>", encode.MustString(root))
}
