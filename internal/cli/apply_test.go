package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeamusWaldron/cubecore/pkg/notation"
)

func setApplyFlags(t *testing.T, alg string) {
	t.Helper()
	applyAlg, applyNet, applyState = alg, false, ""
	t.Cleanup(func() { applyAlg, applyNet, applyState = "", true, "" })
}

func TestApplyAlgorithmFlag(t *testing.T) {
	setApplyFlags(t, "checkerboard")
	assert.NoError(t, runApply(applyCmd, []string{"M2", "E2", "S2"}))
}

func TestApplyUnknownAlgorithm(t *testing.T) {
	setApplyFlags(t, "nope")
	assert.ErrorIs(t, runApply(applyCmd, nil), notation.ErrUnknownAlgorithm)
}

func TestApplyNeedsMovesOrAlgorithm(t *testing.T) {
	setApplyFlags(t, "")
	assert.Error(t, runApply(applyCmd, nil))
}

func TestApplyBadMove(t *testing.T) {
	setApplyFlags(t, "sexy")
	assert.ErrorIs(t, runApply(applyCmd, []string{"R", "Q"}), notation.ErrInvalidMove)
}
