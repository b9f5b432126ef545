package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/brinefall/internal/game"
	bfnet "github.com/peterkuimelis/brinefall/internal/net"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// crewFile is the path to the crews YAML file, set by main.
var crewFile string

// port is the TCP port for the human player connection, set by main.
var port string

// SetCrewFile sets the path to the crews YAML file.
func SetCrewFile(path string) {
	crewFile = path
}

// SetPort sets the TCP port for the human player connection.
func SetPort(p string) {
	port = p
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(selectTargetTool(), handleSelectTarget)
	s.AddTool(answerYesNoTool(), handleAnswerYesNo)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Brinefall skirmish. Returns the initial game state and first pending decision. "+
			"The human player connects via `brinefall join --addr localhost:<port> --crew N` in a separate terminal. "+
			"This call blocks until the human connects."),
		mcp.WithNumber("claude_crew", mcp.Required(), mcp.Description("Crew number for Claude (1-indexed from crews.yaml)")),
		mcp.WithString("claude_side", mcp.Required(), mcp.Description("Which side Claude plays: 'port' (acts first each round) or 'starboard'")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list. Use this when the pending decision type is 'choose_action'."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the action to take from the actions list")),
	)
}

func selectTargetTool() mcp.Tool {
	return mcp.NewTool("select_target",
		mcp.WithDescription("Resolve a card's target. Use this when the pending decision type is 'choose_target'. "+
			"If wants_cell is true, pass x and y board coordinates; otherwise pass the index of a unit from the units list. "+
			"Pass abort=true to back out of the play instead."),
		mcp.WithNumber("index", mcp.Description("Index of the target unit (from the units list)")),
		mcp.WithNumber("x", mcp.Description("Target cell x coordinate (when wants_cell is true)")),
		mcp.WithNumber("y", mcp.Description("Target cell y coordinate (when wants_cell is true)")),
		mcp.WithBoolean("abort", mcp.Description("Back out of the play without spending anything")),
	)
}

func answerYesNoTool() mcp.Tool {
	return mcp.NewTool("answer_yes_no",
		mcp.WithDescription("Answer a yes/no question. Use this when the pending decision type is 'choose_yes_no'."),
		mcp.WithBoolean("answer", mcp.Required(), mcp.Description("true for yes, false for no")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	claudeCrew := request.GetInt("claude_crew", 0)
	claudeSide := request.GetString("claude_side", "")

	if claudeCrew < 1 {
		return mcp.NewToolResultError("claude_crew must be >= 1"), nil
	}
	var claudeTeam game.Team
	switch claudeSide {
	case "port":
		claudeTeam = game.TeamPort
	case "starboard":
		claudeTeam = game.TeamStarboard
	default:
		return mcp.NewToolResultError("claude_side must be 'port' or 'starboard'"), nil
	}

	sess, err := NewGameSession(crewFile, claudeCrew, claudeTeam, port)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	activeSession = sess

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}

	resp.Port = port

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return mcp.NewToolResultError("No pending decision."), nil
	}
	if pending.Team != sess.claudeTeam.String() {
		return mcp.NewToolResultError("Waiting for human player to respond via their terminal."), nil
	}
	if pending.Type != DecisionChooseAction {
		return mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not 'choose_action'. Use the correct tool.", pending.Type), nil
	}

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}

	sess.claudeCtrl.responseCh <- ActionResponse{Index: index}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}

	if resp.GameOver {
		activeSession = nil
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleSelectTarget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return mcp.NewToolResultError("No pending decision."), nil
	}
	if pending.Team != sess.claudeTeam.String() {
		return mcp.NewToolResultError("Waiting for human player to respond via their terminal."), nil
	}
	if pending.Type != DecisionChooseTarget {
		return mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not 'choose_target'. Use the correct tool.", pending.Type), nil
	}

	if request.GetBool("abort", false) {
		sess.claudeCtrl.responseCh <- TargetResponse{Abort: true}
	} else if pending.WantsCell {
		x := request.GetInt("x", -1)
		y := request.GetInt("y", -1)
		if x < 0 || y < 0 {
			return mcp.NewToolResultError("This card targets a board cell: pass x and y coordinates."), nil
		}
		sess.claudeCtrl.responseCh <- TargetResponse{X: x, Y: y}
	} else {
		index := request.GetInt("index", -1)
		found := false
		for _, uv := range pending.Units {
			if uv.Index == index {
				found = true
				break
			}
		}
		if !found {
			return mcp.NewToolResultErrorf("Invalid unit index %d. Pick an index from the units list, or pass abort=true.", index), nil
		}
		sess.claudeCtrl.responseCh <- TargetResponse{Index: index}
	}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}

	if resp.GameOver {
		activeSession = nil
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleAnswerYesNo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return mcp.NewToolResultError("No pending decision."), nil
	}
	if pending.Team != sess.claudeTeam.String() {
		return mcp.NewToolResultError("Waiting for human player to respond via their terminal."), nil
	}
	if pending.Type != DecisionChooseYesNo {
		return mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not 'choose_yes_no'. Use the correct tool.", pending.Type), nil
	}

	answer := request.GetBool("answer", false)

	sess.claudeCtrl.responseCh <- YesNoResponse{Answer: answer}

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}

	if resp.GameOver {
		activeSession = nil
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	events := sess.drainEvents()

	sess.mu.Lock()
	gameOver := sess.gameOver
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		Events:   events,
		GameOver: gameOver,
		Result:   result,
	}
	if gameOver {
		resp.Winner = winner.String()
	}

	if gameOver {
		if sess.currentPending != nil {
			resp.State = sess.currentPending.State
		}
	} else if sess.skirmish != nil {
		// Build a fresh state view from Claude's perspective
		resp.State = bfnet.BuildStateView(sess.skirmish, sess.claudeTeam, nil)
		if sess.currentPending != nil {
			if sess.currentPending.Team != sess.claudeTeam.String() {
				resp.Pending = &PendingView{
					Type:      DecisionChooseAction,
					ForPlayer: "human",
				}
			} else {
				resp.Pending = &PendingView{
					Type:      sess.currentPending.Type,
					ForPlayer: "claude",
					Actions:   sess.currentPending.Actions,
					Prompt:    sess.currentPending.Prompt,
					Card:      sess.currentPending.Card,
					Units:     sess.currentPending.Units,
					WantsCell: sess.currentPending.WantsCell,
				}
			}
		}
	}

	// Ensure events is never null in JSON
	if resp.Events == nil {
		resp.Events = []bfnet.EventView{}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}
