package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const helpText = "[yellow]Enter[-] place  [yellow]r[-] reset  [yellow]m[-] mode  [yellow]+/-[-] difficulty  [yellow]q[-] quit"

// ui owns the session. Every session call happens on the tview event goroutine.
type ui struct {
	logger  *slog.Logger
	session *gomoku.GameSession
	delay   time.Duration

	// generation invalidates machine moves scheduled before a restart
	generation int

	app    *tview.Application
	board  *tview.Table
	status *tview.TextView
}

func newUI(logger *slog.Logger, session *gomoku.GameSession, delay time.Duration) *ui {
	that := &ui{
		logger:  logger.With("component", "tui"),
		session: session,
		delay:   delay,

		app:    tview.NewApplication(),
		board:  tview.NewTable(),
		status: tview.NewTextView(),
	}

	that.board.SetSelectable(true, true)
	that.board.SetBorder(true)
	that.board.SetBorders(false)
	that.board.SetTitleAlign(tview.AlignLeft)
	that.board.SetBorderColor(tcell.ColorGreen)
	that.board.SetSelectedFunc(that.onCellSelected)
	that.board.Select(entity.BoardSize/2, entity.BoardSize/2)

	that.status.SetDynamicColors(true)
	that.status.SetBorder(true)
	that.status.SetTitle(" Gomoku ")

	layout := tview.NewFlex().
		AddItem(that.board, 0, 1, true).
		AddItem(that.status, 40, 0, false)

	that.app.SetRoot(layout, true).SetFocus(that.board)
	that.app.SetInputCapture(that.onKey)

	that.render()

	return that
}

func (that *ui) Run() error {
	return that.app.Run()
}

func (that *ui) onKey(event *tcell.EventKey) *tcell.EventKey {
	var err error

	switch event.Rune() {
	case 'q':
		that.app.Stop()
		return nil
	case 'r':
		err = that.session.Reset(that.session.Mode(), that.session.Difficulty())
	case 'm':
		err = that.session.ToggleMode()
	case '+':
		err = that.session.SetDifficulty(nextDifficulty(that.session.Difficulty(), 1))
	case '-':
		err = that.session.SetDifficulty(nextDifficulty(that.session.Difficulty(), -1))
	default:
		return event
	}

	that.generation++
	that.render()

	if err != nil {
		that.showError(err)
	}

	return nil
}

func (that *ui) onCellSelected(row, col int) {
	if _, err := that.session.ApplyHumanMove(row, col); err != nil {
		that.showError(err)
		return
	}

	that.render()
	that.scheduleMachine()
}

// scheduleMachine - plays the machine's move after the thinking delay.
func (that *ui) scheduleMachine() {
	if that.session.Phase() != gomoku.PhaseMachineThinking {
		return
	}

	generation := that.generation

	go func() {
		time.Sleep(that.delay)

		that.app.QueueUpdateDraw(func() {
			if !machineMoveIsCurrent(generation, that.generation, that.session.Phase()) {
				return
			}

			move, status, err := that.session.RequestMachineMove()
			if err != nil {
				that.logger.Error("machine move failed", "error", err)
				that.showError(err)

				return
			}

			that.logger.Debug("machine moved", "move", move.String(), "status", status.String())
			that.board.Select(move.Row, move.Col)
			that.render()
		})
	}()
}

// machineMoveIsCurrent - a delayed machine move applies only to the game it was scheduled for.
func machineMoveIsCurrent(scheduled, current int, phase gomoku.Phase) bool {
	return scheduled == current && phase == gomoku.PhaseMachineThinking
}

func (that *ui) render() {
	state := that.session.State()

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			cell := tview.NewTableCell(cellSymbol(state.Board[row][col])).
				SetAlign(tview.AlignCenter).
				SetTextColor(cellColor(state.Board[row][col]))

			if state.LastMove != nil && state.LastMove.Row == row && state.LastMove.Col == col {
				cell.SetBackgroundColor(tcell.ColorDarkSlateGray)
			}

			that.board.SetCell(row, col, cell)
		}
	}

	that.board.SetTitle(fmt.Sprintf(" %s ", state.Label()))
	that.status.SetText(statusText(state))
}

func (that *ui) showError(err error) {
	that.status.SetText(statusText(that.session.State()) + "\n\n[red]" + errorText(err) + "[-]")
}

func statusText(state gomoku.State) string {
	return fmt.Sprintf("%s\n\nMode: %s\nDifficulty: %d\nMoves: %d\n\n%s",
		state.Label(), modeName(state.Mode), state.Difficulty, state.Moves, helpText)
}

func modeName(mode entity.GameMode) string {
	if mode == entity.ModeHumanVsHuman {
		return "Human vs Human"
	}

	return "Human vs AI"
}

// nextDifficulty - steps the level and stays within bounds.
func nextDifficulty(level entity.Difficulty, step int) entity.Difficulty {
	next := level + entity.Difficulty(step)

	switch {
	case next < entity.MinDifficulty:
		return entity.MinDifficulty
	case next > entity.MaxDifficulty:
		return entity.MaxDifficulty
	default:
		return next
	}
}

func cellSymbol(cell entity.Cell) string {
	switch cell {
	case entity.BlackCell:
		return "●"
	case entity.WhiteCell:
		return "○"
	default:
		return "·"
	}
}

func cellColor(cell entity.Cell) tcell.Color {
	if cell == entity.EmptyCell {
		return tcell.ColorGray
	}

	return tcell.ColorWhite
}

func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, apperror.ErrGameOver):
		return "Game over. Press r to play again."
	case errors.Is(err, apperror.ErrWrongTurn):
		return "Wait for the AI."
	default:
		return err.Error()
	}
}
