package sections

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/idalloc"
	"github.com/conneroisu/pencraft/internal/layout"
	"github.com/conneroisu/pencraft/internal/node"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func child(t *testing.T, f *node.Frame, name string) *node.Frame {
	t.Helper()
	for _, c := range f.Children {
		if fr, ok := c.(*node.Frame); ok && fr.Name == name {
			return fr
		}
	}
	require.Failf(t, "missing child", "%q has no child frame %q", f.Name, name)
	return nil
}

func TestBuiltinRegistry(t *testing.T) {
	reg := Builtin()

	assert.Equal(t, len(builtins), reg.Count())
	assert.Equal(t, config.DefaultPageNames, reg.Pages())

	for _, key := range []string{"heading", "text"} {
		info, err := reg.Lookup(key)
		require.NoError(t, err)
		assert.Equal(t, PageTypography, info.Page)
	}
	for _, key := range []string{"blockquote", "code", "icon", "image"} {
		info, err := reg.Lookup(key)
		require.NoError(t, err)
		assert.Equal(t, PageData, info.Page)
	}
	info, err := reg.Lookup("announcement")
	require.NoError(t, err)
	assert.Equal(t, PageNavigation, info.Page)
	assert.Equal(t, "Announcement", info.Title)

	info, err = reg.Lookup("toggle-group")
	require.NoError(t, err)
	assert.Equal(t, "Toggle Group", info.Title)
}

func TestRegisterTwiceFails(t *testing.T) {
	reg := Builtin()
	assert.Error(t, Register(reg))
}

func TestEveryBuilderProducesUniqueIDs(t *testing.T) {
	reg := Builtin()
	ids := idalloc.New(1)
	seen := make(map[string]string)

	for _, info := range reg.GetAll() {
		t.Run(info.Key, func(t *testing.T) {
			frame, err := reg.Build(info.Key, ids)
			require.NoError(t, err)
			assert.Equal(t, info.Title, frame.Name)
			assert.Equal(t, node.LayoutVertical, frame.Layout)

			for _, id := range node.IDs(frame) {
				prefix, _, ok := idalloc.Split(id)
				require.True(t, ok, id)
				assert.Equal(t, info.Prefix, prefix)
				if owner, dup := seen[id]; dup {
					t.Errorf("id %s issued to both %s and %s", id, owner, info.Key)
				}
				seen[id] = info.Key
			}
		})
	}
}

func TestStackChildrenCarryNoPosition(t *testing.T) {
	reg := Builtin()
	ids := idalloc.New(1)

	for _, info := range reg.GetAll() {
		frame, err := reg.Build(info.Key, ids)
		require.NoError(t, err)
		_ = node.Walk(frame, func(n node.Node) error {
			f, ok := n.(*node.Frame)
			if !ok || f.Layout == node.LayoutNone {
				return nil
			}
			for _, c := range f.Children {
				if cf, ok := c.(*node.Frame); ok {
					_, _, positioned := cf.Position()
					assert.False(t, positioned, "%s: %s inside stack %s has a position", info.Key, cf.ID, f.ID)
				}
			}
			return nil
		})
	}
}

func TestButtonMatrix(t *testing.T) {
	frame := Button(layout.NewComposer(idalloc.New(1), "btn"))

	matrix := child(t, frame, "Matrix")
	require.Len(t, matrix.Children, 1+len(buttonVariants))
	for i, v := range buttonVariants {
		r := matrix.Children[i+1].(*node.Frame)
		assert.Equal(t, v.name, r.Name)
		assert.Equal(t, node.LayoutHorizontal, r.Layout)
		require.Len(t, r.Children, 1+len(buttonSizes))
		for j, s := range buttonSizes {
			b := r.Children[j+1].(*node.Frame)
			assert.Equal(t, v.name+" / "+s.name, b.Name)
			h, ok := b.Height.Pixels()
			require.True(t, ok)
			assert.Equal(t, s.height, h)
			assert.True(t, b.Reusable)
		}
	}
	assert.Len(t, buttonVariants, 5)
	assert.Len(t, buttonSizes, 3)
}

func TestToastPerSeverity(t *testing.T) {
	frame := Toast(layout.NewComposer(idalloc.New(1), "toast"))

	list := child(t, frame, "Severities")
	require.Len(t, list.Children, len(severities))
	for i, s := range severities {
		toast := list.Children[i].(*node.Frame)
		assert.Equal(t, s.name, toast.Name)
		assert.Equal(t, s.color.String(), toast.Stroke.String())
	}
}

func TestSwitchThumbPlacement(t *testing.T) {
	c := layout.NewComposer(idalloc.New(1), "sw")
	off, on := switchControl(c, false), switchControl(c, true)

	for _, tt := range []struct {
		track *node.Frame
		x     float64
	}{{off, 2}, {on, 22}} {
		assert.Equal(t, node.LayoutNone, tt.track.Layout)
		require.Len(t, tt.track.Children, 1)
		x, y, ok := tt.track.Children[0].(*node.Frame).Position()
		require.True(t, ok)
		assert.Equal(t, tt.x, x)
		assert.Equal(t, 2.0, y)
	}
}

func TestTokensPassThrough(t *testing.T) {
	frame := Badge(layout.NewComposer(idalloc.New(1), "badge"))
	data, err := json.Marshal(frame)
	require.NoError(t, err)

	variants := gjson.GetBytes(data, "children.1.children")
	require.Equal(t, len(badgeVariants), len(variants.Array()))
	assert.Equal(t, "$color.accent.primary", variants.Get("0.fill").String())
	assert.Equal(t, "$radius.full", variants.Get("0.cornerRadius").String())
	assert.Equal(t, "$color.border.default", variants.Get("2.stroke").String())
	assert.False(t, variants.Get("2.fill").Exists())
}

func TestSectionSnapshots(t *testing.T) {
	reg := Builtin()
	for _, key := range []string{"announcement", "breadcrumb"} {
		t.Run(key, func(t *testing.T) {
			frame, err := reg.Build(key, idalloc.New(1))
			require.NoError(t, err)
			data, err := json.MarshalIndent(frame, "", "  ")
			require.NoError(t, err)
			snaps.MatchSnapshot(t, string(data))
		})
	}
}
