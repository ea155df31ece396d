package lookup

// Panel is the visibility of one popup and its result region.
type Panel struct {
	Open          bool
	ResultVisible bool
}

// PopupState tracks both help popups. Methods return a new state and leave
// the receiver untouched.
type PopupState struct {
	Soil     Panel
	Moisture Panel
}

// Panel returns the panel of kind k.
func (s PopupState) Panel(k Kind) Panel {
	if k == KindMoisture {
		return s.Moisture
	}
	return s.Soil
}

func (s PopupState) with(k Kind, p Panel) PopupState {
	switch k {
	case KindSoil:
		s.Soil = p
	case KindMoisture:
		s.Moisture = p
	}
	return s
}

// Open shows popup k. Its result region keeps its current visibility.
func (s PopupState) Open(k Kind) PopupState {
	p := s.Panel(k)
	p.Open = true
	return s.with(k, p)
}

// Close hides popup k and its result region.
func (s PopupState) Close(k Kind) PopupState {
	return s.with(k, Panel{})
}

// ShowResult opens popup k with its result region visible.
func (s PopupState) ShowResult(k Kind) PopupState {
	return s.with(k, Panel{Open: true, ResultVisible: true})
}

// Escape closes both popups and hides both result regions, whichever was
// open.
func (s PopupState) Escape() PopupState {
	return s.Close(KindSoil).Close(KindMoisture)
}

// OpenKinds lists the open popups in display order.
func (s PopupState) OpenKinds() []Kind {
	var out []Kind
	for _, k := range Kinds {
		if s.Panel(k).Open {
			out = append(out, k)
		}
	}
	return out
}

// ParsePopups builds a state with the named popups open. Unknown names are
// ignored.
func ParsePopups(names []string) PopupState {
	var s PopupState
	for _, n := range names {
		if k, ok := ParseKind(n); ok {
			s = s.Open(k)
		}
	}
	return s
}
