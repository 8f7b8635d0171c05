package viscosity

import (
	"testing"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []string{HeliumConstType, NewtonianType}, Types())

	m, err := New(HeliumConstType, testMesh, heliumPrms(1.9, 145))
	require.NoError(t, err)
	assert.Equal(t, HeliumConstType, m.Type())
	assert.IsType(t, &HeliumConst{}, m)

	m, err = New(NewtonianType, testMesh, dbf.Params{&dbf.P{N: "nu", V: 1e-6}, &dbf.P{N: "rho", V: 1000}})
	require.NoError(t, err)
	assert.Equal(t, NewtonianType, m.Type())

	_, err = New("powerLaw", testMesh, nil)
	assert.Error(t, err)

	m, err = New(HeliumConstType, testMesh, nil)
	assert.Error(t, err)
	assert.Nil(t, m, "a failed allocation must return a nil interface")
}

func TestNewtonian(t *testing.T) {
	m, err := NewNewtonian(testMesh, dbf.Params{&dbf.P{N: "nu", V: 1e-6}, &dbf.P{N: "rho", V: 1000}})
	require.NoError(t, err)
	assert.Equal(t, 1e-6, m.Nu().Value())
	assert.InDelta(t, 1e-3, m.Eta().Value(), 1e-15)
	assert.Equal(t, 1000.0, m.Rho())
	for _, f := range fieldsOf(m) {
		requireUniform(t, f)
	}
	assert.Equal(t, 0.0, m.Beta().Value())
	assert.Equal(t, 0.0, m.Onebyf().Value())
	assert.Len(t, m.NuPatch(2), 16)

	assert.False(t, m.Read(dbf.Params{&dbf.P{N: "nu", V: -1}, &dbf.P{N: "rho", V: 1000}}))
	assert.False(t, m.Read(dbf.Params{&dbf.P{N: "nu", V: 2e-6}}))
	assert.Equal(t, 1e-6, m.Nu().Value())

	require.True(t, m.Read(dbf.Params{&dbf.P{N: "nu", V: 2e-6}, &dbf.P{N: "rho", V: 800}}))
	assert.Equal(t, 1e-6, m.Nu().Value(), "Read does not correct")
	m.Correct()
	assert.Equal(t, 2e-6, m.Nu().Value())
	assert.Equal(t, NewtonianType, m.Snapshot().Model)

	_, err = NewNewtonian(testMesh, nil)
	assert.Error(t, err)
}
