package roadtrip_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadtrip"
	"github.com/katalvlaran/roadtrip/dataset"
)

const (
	bordersFixture = "Alpha = Beta 10; Gamma 20;\n" +
		"Beta = Alpha 10; Gamma 5;\n" +
		"Gamma = Alpha 20; Beta 5;\n" +
		"Delta = Epsilon 3;\n" +
		"Epsilon = Delta 3;\n" +
		"Island =\n" +
		"Solo = Solo 1;\n"

	capdistFixture = "numa,ida,numb,idb,kmdist,midist\n" +
		"1,AA,2,BB,500,310\n" +
		"2,BB,3,CC,100,62\n" +
		"1,AA,3,CC,900,559\n" +
		"4,DD,1,AA,42,26\n"

	stateNamesFixture = "statenumber\tstateid\tcountryname\tstart\tend\n" +
		"1\tAA\tAlpha\t1816-01-01\t2020-12-31\n" +
		"2\tBB\tBeta (Republic of)\t1816-01-01\t2020-12-31\n" +
		"3\tCC\tGamma\t1816-01-01\t2020-12-31\n" +
		"4\tDD\tDelta\t1816-01-01\t2020-12-31\n" +
		"6\tSO\tSolo\t1816-01-01\t2020-12-31\n"
)

// TripSuite loads the fixtures from disk once per test.
type TripSuite struct {
	suite.Suite
	src  dataset.Sources
	trip *roadtrip.Trip
}

func (s *TripSuite) SetupTest() {
	dir := s.T().TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		s.Require().NoError(os.WriteFile(p, []byte(content), 0o644))
		return p
	}
	s.src = dataset.Sources{
		Borders:         write("borders.txt", bordersFixture),
		CapitalDistance: write("capdist.csv", capdistFixture),
		StateNames:      write("state_name.tsv", stateNamesFixture),
	}

	trip, err := roadtrip.New(context.Background(), s.src)
	s.Require().NoError(err)
	s.trip = trip
}

func (s *TripSuite) TestGetDistance() {
	s.Equal(500, s.trip.GetDistance("Alpha", "Beta"))
	s.Equal(500, s.trip.GetDistance("Beta", "Alpha"))
	s.Equal(100, s.trip.GetDistance("Gamma", "Beta"))

	// Known pair without a shared border.
	s.Equal(42, s.trip.GetDistance("Delta", "Alpha"))

	// Epsilon has no code; Atlantis is not declared.
	s.Equal(-1, s.trip.GetDistance("Delta", "Epsilon"))
	s.Equal(-1, s.trip.GetDistance("Alpha", "Atlantis"))
	s.Equal(-1, s.trip.GetDistance("Alpha", "Alpha"))
}

func (s *TripSuite) TestFindPath_PrefersShorterTotal() {
	s.Equal([]string{
		"Alpha --> Beta (500 km.)",
		"Beta --> Gamma (100 km.)",
	}, s.trip.FindPath("Alpha", "Gamma"))
}

func (s *TripSuite) TestRoute_Steps() {
	steps, err := s.trip.Route("Gamma", "Alpha")
	s.Require().NoError(err)
	s.Equal([]roadtrip.Step{
		{From: "Gamma", To: "Beta", Km: 100, Known: true},
		{From: "Beta", To: "Alpha", Km: 500, Known: true},
	}, steps)

	total := 0
	for i, st := range steps {
		total += st.Km
		if i > 0 {
			s.Equal(steps[i-1].To, st.From, "hops must chain")
		}
	}
	s.Equal(600, total)
}

func (s *TripSuite) TestRoute_UnknownCountry() {
	_, err := s.trip.Route("Atlantis", "Alpha")
	s.Require().ErrorIs(err, roadtrip.ErrUnknownCountry)
	s.ErrorContains(err, "Atlantis")

	_, err = s.trip.Route("Alpha", "Atlantis")
	s.Require().ErrorIs(err, roadtrip.ErrUnknownCountry)

	s.Empty(s.trip.FindPath("Atlantis", "Alpha"))
	s.NotNil(s.trip.FindPath("Atlantis", "Alpha"))
}

func (s *TripSuite) TestFindPath_SameCountry() {
	s.Empty(s.trip.FindPath("Alpha", "Alpha"))
	s.Empty(s.trip.FindPath("Solo", "Solo"))
}

func (s *TripSuite) TestFindPath_NoBorderChain() {
	s.Empty(s.trip.FindPath("Alpha", "Delta"))
	s.Empty(s.trip.FindPath("Island", "Alpha"))
	s.False(s.trip.Connected("Alpha", "Delta"))
}

func (s *TripSuite) TestFindPath_UnknownDistanceBorderUnusable() {
	// Delta borders Epsilon, but Epsilon has no code.
	s.True(s.trip.Connected("Delta", "Epsilon"))
	s.Empty(s.trip.FindPath("Delta", "Epsilon"))
}

func (s *TripSuite) TestConnected() {
	s.True(s.trip.Connected("Alpha", "Gamma"))
	s.True(s.trip.Connected("Alpha", "Alpha"))
	s.False(s.trip.Connected("Atlantis", "Alpha"))
	s.False(s.trip.Connected("Alpha", "Atlantis"))
}

func (s *TripSuite) TestAtlas() {
	s.Equal([]string{"Alpha", "Beta", "Delta", "Epsilon", "Gamma", "Island", "Solo"}, s.trip.Atlas().Countries())
}

func (s *TripSuite) TestNew_SourceError() {
	s.src.StateNames = filepath.Join(s.T().TempDir(), "missing.tsv")

	trip, err := roadtrip.New(context.Background(), s.src)
	s.Nil(trip)
	s.Require().ErrorIs(err, dataset.ErrSourceUnreadable)

	var srcErr *dataset.SourceError
	s.Require().True(errors.As(err, &srcErr))
	s.Equal(dataset.SourceStateNames, srcErr.Source)
}

func (s *TripSuite) TestNew_LoggerAndSnapshot() {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	trip, err := roadtrip.New(context.Background(), s.src,
		roadtrip.WithLogger(logger),
		roadtrip.WithSnapshotDate("1999-01-01"),
	)
	s.Require().NoError(err)

	// No rows at the pinned date, so no codes and no distances.
	s.Equal(-1, trip.GetDistance("Alpha", "Beta"))
	s.Empty(trip.FindPath("Alpha", "Gamma"))
	s.True(trip.Connected("Alpha", "Gamma"))

	s.Contains(buf.String(), "built border graph")
	s.Contains(buf.String(), "no route")
}

func TestTripSuite(t *testing.T) {
	suite.Run(t, new(TripSuite))
}

// Directed adjacency: Omega lists Alpha, Alpha never lists Omega.
func TestRoute_DirectedAsDeclared(t *testing.T) {
	trip, err := roadtrip.FromTables(&dataset.Tables{
		Borders: dataset.AdjacencyTable{
			"Alpha": {},
			"Omega": {"Alpha"},
		},
		Codes: dataset.CodeTable{"Alpha": "AA", "Omega": "OM"},
		Distances: dataset.DistanceTable{
			{A: "AA", B: "OM"}: 7,
			{A: "OM", B: "AA"}: 7,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Omega --> Alpha (7 km.)"}, trip.FindPath("Omega", "Alpha"))
	assert.Empty(t, trip.FindPath("Alpha", "Omega"))
}

func TestFromTables_Nil(t *testing.T) {
	_, err := roadtrip.FromTables(nil)
	require.Error(t, err)
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "Spain --> France (1053 km.)", roadtrip.Step{From: "Spain", To: "France", Km: 1053, Known: true}.String())
	assert.Equal(t, "Spain --> France (Distance unknown)", roadtrip.Step{From: "Spain", To: "France"}.String())
}
