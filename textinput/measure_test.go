package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/agiangrant/picklist/textinput/mocks"
)

func TestPrefixWidthMeasuresPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMeasurer(ctrl)

	m.EXPECT().Measure("hé", float32(14), "bold").Return(float32(17.4))

	width := PrefixWidth(m, NewValue("héllo"), 14, "bold")
	assert.Equal(t, float32(0), width(0), "empty prefix is not measured")
	assert.Equal(t, float32(17.4), width(2))
}

func TestRoundedMeasurer(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockMeasurer(ctrl)

	m.EXPECT().Measure("a", gomock.Any(), gomock.Any()).Return(float32(7.5))
	m.EXPECT().Measure("ab", gomock.Any(), gomock.Any()).Return(float32(12.4))

	width := Rounded(PrefixWidth(m, NewValue("ab"), 16, ""))
	assert.Equal(t, float32(8), width(1))
	assert.Equal(t, float32(12), width(2))
}
