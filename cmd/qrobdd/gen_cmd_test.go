package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnegrid/qrobdd/parser"
)

func TestGenNQueensEmitsParseableFormula(t *testing.T) {
	out, err := runCLI(t, "gen", "nqueens", "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "q_0_0")
	_, err = parser.Parse(out)
	require.NoError(t, err)
}

func TestGenSudokuWithGiven(t *testing.T) {
	out, err := runCLI(t, "gen", "sudoku", "--box", "2", "--given", "0,0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "cell_0_0_1")
}

func TestGenSudokuRejectsMalformedGiven(t *testing.T) {
	_, err := runCLI(t, "gen", "sudoku", "--given", "not-a-triple")
	require.Error(t, err)
}

func TestGenCliqueWithEdges(t *testing.T) {
	out, err := runCLI(t, "gen", "clique", "--vertices", "3", "--edge", "0-1", "--k", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "v_0")
}

func TestGenRandomGraphIsDeterministic(t *testing.T) {
	out1, err := runCLI(t, "gen", "randomgraph", "--vertices", "5", "--edges", "4", "--seed", "7")
	require.NoError(t, err)
	out2, err := runCLI(t, "gen", "randomgraph", "--vertices", "5", "--edges", "4", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}
