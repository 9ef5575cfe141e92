package texture

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Texture1d, "Texture1d"},
		{Texture2d, "Texture2d"},
		{Texture2dMultisample, "Texture2dMultisample"},
		{Texture3d, "Texture3d"},
		{Cubemap, "Cubemap"},
		{Texture1dArray, "Texture1dArray"},
		{Texture2dArray, "Texture2dArray"},
		{Texture2dMultisampleArray, "Texture2dMultisampleArray"},
		{CubemapArray, "CubemapArray"},
		{BufferTexture, "BufferTexture"},
		{Type(200), "Unknown(200)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", uint8(tt.typ), got, tt.want)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	arrays := map[Type]bool{
		Texture1dArray:            true,
		Texture2dArray:            true,
		Texture2dMultisampleArray: true,
		CubemapArray:              true,
	}
	multisampled := map[Type]bool{
		Texture2dMultisample:      true,
		Texture2dMultisampleArray: true,
	}

	all := []Type{
		Texture1d, Texture2d, Texture2dMultisample, Texture3d, Cubemap,
		Texture1dArray, Texture2dArray, Texture2dMultisampleArray,
		CubemapArray, BufferTexture,
	}
	for _, typ := range all {
		if got := typ.IsArray(); got != arrays[typ] {
			t.Errorf("%v.IsArray() = %v, want %v", typ, got, arrays[typ])
		}
		if got := typ.IsMultisample(); got != multisampled[typ] {
			t.Errorf("%v.IsMultisample() = %v, want %v", typ, got, multisampled[typ])
		}
	}
}

func TestFormatFamilyString(t *testing.T) {
	tests := []struct {
		family FormatFamily
		want   string
	}{
		{FamilyFloat, "Float"},
		{FamilyIntegral, "Integral"},
		{FamilyUnsigned, "Unsigned"},
		{FamilyDepth, "Depth"},
		{FamilyStencil, "Stencil"},
		{FamilyDepthStencil, "DepthStencil"},
		{FormatFamily(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.family.String(); got != tt.want {
			t.Errorf("FormatFamily(%d).String() = %q, want %q", uint8(tt.family), got, tt.want)
		}
	}
}

func TestExtents(t *testing.T) {
	if e := Extent1D(64); e.Width != 64 || e.Height != 1 || e.DepthOrArrayLayers != 1 {
		t.Errorf("Extent1D(64) = %+v", e)
	}
	if e := Extent2D(64, 32); e.Width != 64 || e.Height != 32 || e.DepthOrArrayLayers != 1 {
		t.Errorf("Extent2D(64, 32) = %+v", e)
	}
	if e := Extent3D(4, 8, 16); e.Width != 4 || e.Height != 8 || e.DepthOrArrayLayers != 16 {
		t.Errorf("Extent3D(4, 8, 16) = %+v", e)
	}
}
