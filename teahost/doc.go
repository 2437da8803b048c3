// Package teahost runs floating elements inside a bubbletea program.
//
// The model owns a Host and forwards every message to it first:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//	    if handled, cmd := m.host.Update(msg); handled {
//	        return m, cmd
//	    }
//	    ...
//	}
//
// View renders the base screen into a Canvas and places the floating panel at
// the engine's coordinates with Canvas.Place.
package teahost
