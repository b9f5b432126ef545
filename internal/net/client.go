package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a skirmish server and provides a terminal REPL.
type Client struct {
	conn net.Conn
}

// Connect dials a server, sends the crew choice, and runs the REPL.
func Connect(ctx context.Context, addr string, crewNumber int) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", CrewNumber: crewNumber}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for the skirmish to start...")

	client := &Client{conn: conn}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			idx := c.readChoice(reader, len(msg.Actions))
			if err := enc.Encode(ClientMessage{Type: "action", Index: idx}); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "choose_target":
			resp := c.readTarget(reader, msg)
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("send target: %w", err)
			}

		case "choose_yes_no":
			fmt.Printf("\n%s (y/n): ", msg.Prompt)
			answer := c.readYesNo(reader)
			if err := enc.Encode(ClientMessage{Type: "yes_no", Answer: answer}); err != nil {
				return fmt.Errorf("send yes_no: %w", err)
			}

		case "game_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("        SKIRMISH OVER")
			fmt.Println("═══════════════════════════════════")
			fmt.Printf("Winner: %s\n", msg.Winner)
			fmt.Println(msg.Result)
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	fmt.Printf("R%-2d | %s\n", ev.Round, ev.Details)
}

// renderState sketches the board and the crews around it.
func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	// Board sketch: each unit is the first letter of its name, lowercase
	// for the starboard crew.
	grid := make([][]rune, sv.Height)
	for y := range grid {
		grid[y] = make([]rune, sv.Width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, u := range sv.Units {
		if u.Dead || u.Struck {
			continue
		}
		if u.Y < 0 || u.Y >= sv.Height || u.X < 0 || u.X >= sv.Width {
			continue
		}
		r := rune(u.Name[0])
		if u.Team == "Starboard" {
			r = r + ('a' - 'A')
		}
		grid[u.Y][u.X] = r
	}

	fmt.Println()
	fmt.Printf("Round %d\n", sv.Round)
	for y := sv.Height - 1; y >= 0; y-- {
		fmt.Printf("  %2d ", y)
		for x := 0; x < sv.Width; x++ {
			fmt.Printf("%c ", grid[y][x])
		}
		fmt.Println()
	}
	fmt.Print("     ")
	for x := 0; x < sv.Width; x++ {
		fmt.Printf("%d ", x%10)
	}
	fmt.Println()

	for _, u := range sv.Units {
		status := ""
		if u.Dead {
			status = " [DEAD]"
		} else if u.Struck {
			status = " [SURRENDERED]"
		}
		fmt.Printf("  %-12s %-10s %-14s HP %d/%d  Morale %d  Grit %d%s\n",
			u.Name, u.Team, u.Role, u.HP, u.MaxHP, u.Morale, u.Grit, status)
	}

	if sv.Acting != "" {
		fmt.Printf("\nActing: %s  Energy: %d  Grog: %d  Draw: %d  Discard: %d\n",
			sv.Acting, sv.Energy, sv.Grog, sv.DrawPile, sv.Discard)
	}
	if len(sv.Hand) > 0 {
		fmt.Print("Hand: ")
		for i, name := range sv.Hand {
			fmt.Printf("[%d] %s  ", i+1, name)
		}
		fmt.Println()
	}
}

func (c *Client) renderActions(actions []ActionView) {
	fmt.Println("\nActions:")
	for _, a := range actions {
		fmt.Printf("  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > count {
			fmt.Printf("Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1 // convert to 0-indexed
	}
}

// readTarget prompts for a unit, a cell, or an abort ("q").
func (c *Client) readTarget(reader *bufio.Reader, msg ServerMessage) ClientMessage {
	fmt.Printf("\n%s", msg.Prompt)
	if msg.Card != nil {
		fmt.Printf(" (%s, cost %d)", msg.Card.Category, msg.Card.Cost)
	}
	fmt.Println()

	if msg.WantsCell {
		fmt.Println("Enter a cell as 'x y', or q to cancel")
		for {
			fmt.Print("> ")
			line, _ := reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if line == "q" {
				return ClientMessage{Type: "target", Abort: true}
			}
			parts := strings.Fields(line)
			if len(parts) == 2 {
				x, errX := strconv.Atoi(parts[0])
				y, errY := strconv.Atoi(parts[1])
				if errX == nil && errY == nil {
					return ClientMessage{Type: "target", X: x, Y: y}
				}
			}
			fmt.Println("Enter two numbers, or q to cancel")
		}
	}

	for _, u := range msg.Units {
		fmt.Printf("  %d) %s (%s) HP %d/%d at (%d,%d)\n",
			u.Index+1, u.Name, u.Team, u.HP, u.MaxHP, u.X, u.Y)
	}
	fmt.Println("Pick a unit by number, or q to cancel")
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "q" {
			return ClientMessage{Type: "target", Abort: true}
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 {
			fmt.Println("Enter a listed number, or q to cancel")
			continue
		}
		for _, u := range msg.Units {
			if u.Index == n-1 {
				return ClientMessage{Type: "target", Index: u.Index}
			}
		}
		fmt.Println("Enter a listed number, or q to cancel")
	}
}

func (c *Client) readYesNo(reader *bufio.Reader) bool {
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(strings.ToLower(line))
		switch line {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Print("Enter y or n: ")
		}
	}
}
