package wind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, "0.5", FormatMetersPerSecond(MetersPerSecond(1)))
	assert.Equal(t, "2", FormatKilometersPerHour(KilometersPerHour(1)))
	assert.Equal(t, "1", FormatKnots(Knots(1)))

	assert.Equal(t, "5.1", FormatMetersPerSecond(MetersPerSecond(10)))
	assert.Equal(t, "19", FormatKilometersPerHour(KilometersPerHour(10)))
	assert.Equal(t, "0.0", FormatMetersPerSecond(MetersPerSecond(0)))
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, 180.0, Opposite(0))
	assert.Equal(t, 450.0, Opposite(270))
}

func TestDescriptionBands(t *testing.T) {
	cases := []struct {
		knots float64
		want  string
	}{
		{0, "Stille vind"},
		{0.4, "Stille vind"},
		{1, "Flau vind"},
		{3, "Flau vind"},
		{3.4, "Flau vind"},
		{3.6, "Svak vind"},
		{10, "Lett bris"},
		{11, "Laber bris"},
		{15, "Laber bris"},
		{16, "Frisk bris"},
		{27, "Liten kuling"},
		{33, "Stiv kuling"},
		{40, "Sterk kuling"},
		{47, "Liten storm"},
		{55, "Full storm"},
		{63, "Sterk storm"},
		{64, "Orkan"},
		{120, "Orkan"},
		{-4, "Stille vind"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Description(c.knots), "knots=%v", c.knots)
	}
}

func TestBandsCoverWithoutGaps(t *testing.T) {
	for i := 1; i < len(Bands); i++ {
		assert.Equal(t, Bands[i-1].Max+1, Bands[i].Min, "gap before %s", Bands[i].Description)
	}
	assert.Equal(t, 0.0, Bands[0].Min)
	// 63 is the last band before the open-ended one.
	assert.Equal(t, Bands[len(Bands)-2].Description, Description(63))
	assert.Equal(t, Bands[len(Bands)-1].Description, Description(64))
}

func TestIconKey(t *testing.T) {
	assert.Equal(t, "01", IconKey(0))
	assert.Equal(t, "01", IconKey(5))
	assert.Equal(t, "02", IconKey(6))
	assert.Equal(t, "02", IconKey(10))
	assert.Equal(t, "13", IconKey(63))
	assert.Equal(t, "01", IconKey(-3))
}
