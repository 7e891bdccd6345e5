package instance_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nrodrigues/juice-schedule/instance"
)

func TestWriteParse_RoundTrip(t *testing.T) {
	original, warnings, err := instance.Parse(strings.NewReader(wellFormed))
	require.NoError(t, err)
	require.Empty(t, warnings)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, original))

	reparsed, warnings2, err := instance.Parse(&buf)
	require.NoError(t, err)
	require.Empty(t, warnings2)

	require.Equal(t, original.Jobs, reparsed.Jobs)
	require.Equal(t, original.SetupTimes, reparsed.SetupTimes)
	require.Equal(t, original.InitialSetupTimes, reparsed.InitialSetupTimes)
}

func TestWrite_FractionalPenaltyRoundTrips(t *testing.T) {
	const input = `1

5
10
0.333333

0

0
`
	p, _, err := instance.Parse(strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, p))

	reparsed, _, err := instance.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Jobs[0].PenaltyRate, reparsed.Jobs[0].PenaltyRate)
}
