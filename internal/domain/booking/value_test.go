//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"

	"booking-widget/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("表示用文字列", func(t *testing.T) {
		cases := []struct {
			name string
			raw  string
			want string
		}{
			{name: "文字列は引用符なし", raw: `"Deluxe"`, want: "Deluxe"},
			{name: "数値はそのまま", raw: `5000`, want: "5000"},
			{name: "小数もそのまま", raw: `4999.50`, want: "4999.50"},
			{name: "真偽値", raw: `true`, want: "true"},
			{name: "nullは空文字", raw: `null`, want: ""},
			{name: "未設定は空文字", raw: ``, want: ""},
			{name: "エスケープを解除", raw: `"Sea \"View\""`, want: `Sea "View"`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, booking.NewValue(json.RawMessage(tc.raw)).String())
			})
		}
	})

	t.Run("真偽判定", func(t *testing.T) {
		cases := []struct {
			raw  string
			want bool
		}{
			{raw: ``, want: false},
			{raw: `null`, want: false},
			{raw: `false`, want: false},
			{raw: `0`, want: false},
			{raw: `0.0`, want: false},
			{raw: `""`, want: false},
			{raw: `true`, want: true},
			{raw: `1`, want: true},
			{raw: `-2`, want: true},
			{raw: `"0"`, want: true},
			{raw: `"false"`, want: true},
			{raw: `{}`, want: true},
			{raw: `[]`, want: true},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, booking.NewValue(json.RawMessage(tc.raw)).Truthy(), "raw=%q", tc.raw)
		}
	})

	t.Run("nullと未設定を区別", func(t *testing.T) {
		assert.True(t, booking.Value{}.IsZero())
		assert.False(t, booking.NewValue(json.RawMessage(`null`)).IsZero())
	})

	t.Run("元の値をそのまま再エンコード", func(t *testing.T) {
		var holder struct {
			V booking.Value `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"v":"R-101"}`), &holder))

		out, err := json.Marshal(holder)
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":"R-101"}`, string(out))
	})

	t.Run("入力バッファを共有しない", func(t *testing.T) {
		raw := []byte(`"abc"`)
		v := booking.NewValue(raw)
		raw[1] = 'x'
		assert.Equal(t, "abc", v.String())
	})

	t.Run("StringValue", func(t *testing.T) {
		v := booking.StringValue("B123")
		assert.Equal(t, `"B123"`, string(v.Raw()))
		assert.Equal(t, "B123", v.String())
	})
}

func TestDecodeObject(t *testing.T) {
	t.Run("キー順を保持", func(t *testing.T) {
		obj, err := booking.DecodeObject(json.RawMessage(`{"z":1,"a":"two","m":null}`))
		require.NoError(t, err)
		require.Len(t, obj, 3)

		keys := make([]string, 0, len(obj))
		for _, f := range obj {
			keys = append(keys, f.Key)
		}
		assert.Equal(t, []string{"z", "a", "m"}, keys)

		first, ok := obj.First()
		require.True(t, ok)
		assert.Equal(t, "1", first.String())
	})

	t.Run("重複キーは最後の値", func(t *testing.T) {
		obj, err := booking.DecodeObject(json.RawMessage(`{"Name":"old","Name":"new"}`))
		require.NoError(t, err)
		v, ok := obj.Get("Name")
		require.True(t, ok)
		assert.Equal(t, "new", v.String())
	})

	t.Run("オブジェクト以外はエラー", func(t *testing.T) {
		for _, raw := range []string{`[1,2]`, `"x"`, `42`, `null`} {
			_, err := booking.DecodeObject(json.RawMessage(raw))
			assert.ErrorIs(t, err, booking.ErrNotObject, "raw=%s", raw)
		}
	})

	t.Run("空オブジェクト", func(t *testing.T) {
		obj, err := booking.DecodeObject(json.RawMessage(`{}`))
		require.NoError(t, err)
		_, ok := obj.First()
		assert.False(t, ok)
	})
}
