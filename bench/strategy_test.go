package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"shape-bench/area/reference"
)

type strategyTestSuite struct {
	suite.Suite
	assert *assert.Assertions
}

func (suite *strategyTestSuite) SetupTest() {
	suite.assert = assert.New(suite.T())
}

func (suite *strategyTestSuite) TestRegistryOrder() {
	var names []string
	for _, s := range Strategies() {
		names = append(names, s.Name)
		suite.assert.NotNil(s.Rectangle)
		suite.assert.NotNil(s.Circle)
		suite.assert.NotNil(s.Sum)
	}
	suite.assert.Equal([]string{"Reference", "Value", "Match", "UnsafeMatch"}, names)
}

func (suite *strategyTestSuite) TestStrategiesReturnsCopy() {
	got := Strategies()
	got[0].Name = "changed"
	suite.assert.Equal("Reference", Strategies()[0].Name)
}

func (suite *strategyTestSuite) TestRectangle() {
	for _, s := range Strategies() {
		suite.assert.Equal(100, s.Rectangle(10, 10), s.Name)
		suite.assert.Equal(12, s.Rectangle(3, 4), s.Name)
		suite.assert.Equal(0, s.Rectangle(0, 7), s.Name)
	}
}

func (suite *strategyTestSuite) TestCircle() {
	for _, s := range Strategies() {
		suite.assert.Equal(98, s.Circle(10), s.Name)
		suite.assert.Equal(9, s.Circle(1), s.Name)
		suite.assert.Equal(0, s.Circle(0), s.Name)
	}
}

func (suite *strategyTestSuite) TestCrossStrategyConsistency() {
	all := Strategies()
	base := all[0]
	for l := -3; l <= 25; l++ {
		for w := 0; w <= 25; w += 5 {
			want := base.Rectangle(l, w)
			suite.assert.Equal(l*w, want)
			for _, s := range all[1:] {
				suite.assert.Equal(want, s.Rectangle(l, w), "%s rectangle %dx%d", s.Name, l, w)
			}
		}
	}
	for r := -50; r <= 1000; r += 7 {
		want := base.Circle(r)
		suite.assert.Equal(int(float64(float32(r))*3.14*3.14), want)
		for _, s := range all[1:] {
			suite.assert.Equal(want, s.Circle(r), "%s circle r=%d", s.Name, r)
		}
	}
}

func (suite *strategyTestSuite) TestSum() {
	suite.assert.Equal(10000000, ExpectedSum())
	for _, s := range Strategies() {
		suite.assert.Equal(ExpectedSum(), s.Sum(), s.Name)
		// Sums carry no state between calls.
		suite.assert.Equal(ExpectedSum(), s.Sum(), s.Name)
	}
}

func (suite *strategyTestSuite) TestReferenceSumDispatchesDynamically() {
	saved := referenceShape
	defer func() { referenceShape = saved }()

	// Whatever the variable holds decides which method runs.
	referenceShape = &reference.Circle{Radius: 10}
	suite.assert.Equal(InnerIterationCount*98, ReferenceSum())

	referenceShape = saved
	suite.assert.Equal(ExpectedSum(), ReferenceSum())
}

func (suite *strategyTestSuite) TestLookup() {
	s, ok := Lookup("unsafematch")
	suite.assert.True(ok)
	suite.assert.Equal("UnsafeMatch", s.Name)

	_, ok = Lookup("virtual")
	suite.assert.False(ok)
}

func (suite *strategyTestSuite) TestSelect() {
	all, err := Select("")
	suite.assert.NoError(err)
	suite.assert.Len(all, 4)

	got, err := Select("Match$")
	suite.assert.NoError(err)
	suite.assert.Len(got, 2)
	suite.assert.Equal("Match", got[0].Name)
	suite.assert.Equal("UnsafeMatch", got[1].Name)

	got, err = Select("^(Reference|Value)$")
	suite.assert.NoError(err)
	suite.assert.Len(got, 2)

	_, err = Select("[")
	suite.assert.Error(err)

	_, err = Select("Nope")
	suite.assert.ErrorContains(err, "no strategy matches")
}

func (suite *strategyTestSuite) TestSelectExactName() {
	got, err := Select("Match")
	suite.assert.NoError(err)
	suite.assert.Len(got, 1)
	suite.assert.Equal("Match", got[0].Name)

	// Names ignore case; as a regexp "value" would match nothing.
	got, err = Select("value")
	suite.assert.NoError(err)
	suite.assert.Len(got, 1)
	suite.assert.Equal("Value", got[0].Name)
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(strategyTestSuite))
}
