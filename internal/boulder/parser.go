package boulder

import (
	"strconv"
	"strings"
)

// parseBoardString decodes "rows|cols|gems_required|c0|c1|...|c(n-1)" into
// its constituent parts, validating cell codes and the single-agent
// invariant, matching parse_board_str() in the reference implementation.
func parseBoardString(s string) (rows, cols, gemsRequired int, grid []HiddenCellType, agentIdx int, agentInExit bool, err error) {
	tokens := strings.Split(strings.TrimSpace(s), "|")
	if len(tokens) < 3 {
		return 0, 0, 0, nil, 0, false, &ParseError{Reason: "level string must contain at least rows|cols|gems_required"}
	}

	rows, err1 := strconv.Atoi(strings.TrimSpace(tokens[0]))
	cols, err2 := strconv.Atoi(strings.TrimSpace(tokens[1]))
	gemsRequired, err3 := strconv.Atoi(strings.TrimSpace(tokens[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, nil, 0, false, &ParseError{Reason: "rows, cols, and gems_required must be integers"}
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, 0, nil, 0, false, &ParseError{Reason: "rows and cols must be positive"}
	}
	if gemsRequired < 0 {
		return 0, 0, 0, nil, 0, false, &ParseError{Reason: "gems_required must be non-negative"}
	}

	want := rows*cols + 3
	if len(tokens) != want {
		return 0, 0, 0, nil, 0, false, &ParseError{
			Reason: "expected " + strconv.Itoa(want) + " tokens (rows*cols+3), got " + strconv.Itoa(len(tokens)),
		}
	}

	grid = make([]HiddenCellType, rows*cols)
	agentCount := 0
	agentIdx = -1
	for i := 0; i < rows*cols; i++ {
		code, cerr := strconv.Atoi(strings.TrimSpace(tokens[i+3]))
		if cerr != nil {
			return 0, 0, 0, nil, 0, false, &ParseError{Reason: "cell " + strconv.Itoa(i) + " is not an integer"}
		}
		if code < 0 || code >= NumHiddenCellType {
			return 0, 0, 0, nil, 0, false, &ParseError{Reason: "cell " + strconv.Itoa(i) + " has out-of-range type " + strconv.Itoa(code)}
		}
		kind := HiddenCellType(code)
		grid[i] = kind
		if kind == Agent || kind == AgentInExit {
			agentCount++
			agentIdx = i
			agentInExit = kind == AgentInExit
		}
	}

	if agentCount != 1 {
		return 0, 0, 0, nil, 0, false, &ParseError{Reason: "level must contain exactly one agent cell, found " + strconv.Itoa(agentCount)}
	}

	return rows, cols, gemsRequired, grid, agentIdx, agentInExit, nil
}
