// Package wheelterm renders the wheel display in a terminal. It
// provides a lipgloss-styled wheel.Surface and a Bubble Tea model that
// drives the frame loop, so a host can run a flip clock with
// tea.NewProgram(wheelterm.New(cfg)).
package wheelterm

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/flipclock/pkg/wheel"
)

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)

	rollingCellStyle = cellStyle.
				BorderForeground(lipgloss.Color("63"))

	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Align(lipgloss.Center)

	unitStyle = lipgloss.NewStyle().
			MarginRight(2)
)

// cellRows is the visible height of a digit window. During a roll the
// outgoing and incoming digits slide through these rows.
const cellRows = 3

// Surface is a terminal wheel.Surface. It accumulates view state from
// the core and renders it as styled text on demand; the Bubble Tea model
// calls View once per frame.
//
// Surface is not safe for concurrent use. Bubble Tea delivers messages
// on a single goroutine, which matches the engine's cooperative model.
type Surface struct {
	units    []*unitView
	detached bool
}

// NewSurface creates an empty terminal surface.
func NewSurface() *Surface {
	return &Surface{}
}

// AttachUnit adds a unit column, left to right in attach order.
func (s *Surface) AttachUnit(unit wheel.Unit, label string) wheel.UnitView {
	v := &unitView{unit: unit, label: label}
	s.units = append(s.units, v)
	return v
}

// Detach releases the surface; View renders nothing afterwards.
func (s *Surface) Detach() {
	s.detached = true
	s.units = nil
}

// View renders the whole wheel row.
func (s *Surface) View() string {
	if s.detached || len(s.units) == 0 {
		return ""
	}
	columns := make([]string, 0, len(s.units))
	for _, v := range s.units {
		columns = append(columns, unitStyle.Render(v.view()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

type slotState struct {
	digit    rune
	rolling  bool
	from     rune
	to       rune
	dir      wheel.Direction
	progress float64
}

type unitView struct {
	unit     wheel.Unit
	label    string
	slots    [2]slotState
	detached bool
}

func (v *unitView) SetDigit(slot wheel.Slot, d rune) {
	if v.detached {
		return
	}
	v.slots[slot] = slotState{digit: d}
}

func (v *unitView) ShowTransition(slot wheel.Slot, from, to rune, dir wheel.Direction, progress float64) {
	if v.detached {
		return
	}
	v.slots[slot] = slotState{
		rolling:  true,
		from:     from,
		to:       to,
		dir:      dir,
		progress: progress,
	}
}

func (v *unitView) Detach() {
	v.detached = true
}

func (v *unitView) view() string {
	if v.detached {
		return ""
	}
	cells := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCell(v.slots[wheel.SlotTens]),
		renderCell(v.slots[wheel.SlotOnes]),
	)
	label := labelStyle.Width(lipgloss.Width(cells)).Render(v.label)
	return lipgloss.JoinVertical(lipgloss.Left, cells, label)
}

// renderCell draws one digit window. A resting cell centers its digit;
// a rolling cell slides the outgoing digit out of the window while the
// incoming digit follows from the opposite edge.
func renderCell(st slotState) string {
	rows := make([]string, cellRows)
	for i := range rows {
		rows[i] = " "
	}

	if !st.rolling {
		if st.digit != 0 {
			rows[cellRows/2] = string(st.digit)
		}
		return cellStyle.Render(strings.Join(rows, "\n"))
	}

	// Map progress onto row offsets within the window. The outgoing
	// digit starts centered and exits through one edge; the incoming
	// digit enters through the other.
	shift := int(st.progress * float64(cellRows))
	fromRow := cellRows/2 - shift
	toRow := cellRows/2 + (cellRows - shift)
	if st.dir == wheel.DirectionDown {
		fromRow = cellRows/2 + shift
		toRow = cellRows/2 - (cellRows - shift)
	}
	if toRow >= 0 && toRow < cellRows {
		rows[toRow] = string(st.to)
	}
	if fromRow >= 0 && fromRow < cellRows {
		rows[fromRow] = string(st.from)
	}
	return rollingCellStyle.Render(strings.Join(rows, "\n"))
}
