package scale

// Axes is a Provider backed by one x scale and two vertical scales. Series
// listed in Y2IDs use the secondary vertical axis. Nil sub scales fall back
// to the main ones.
type Axes struct {
	XScale    Scale
	SubXScale Scale
	YScale    Scale
	Y2Scale   Scale
	SubYScale Scale
	SubY2     Scale
	Y2IDs     map[string]bool
}

var _ Provider = (*Axes)(nil)

// X implements Provider.
func (a *Axes) X(sub bool) Scale {
	if sub && a.SubXScale != nil {
		return a.SubXScale
	}
	return orIdentity(a.XScale)
}

// Y implements Provider.
func (a *Axes) Y(id string, sub bool) Scale {
	if a.Y2IDs[id] {
		if sub && a.SubY2 != nil {
			return a.SubY2
		}
		if a.Y2Scale != nil {
			return a.Y2Scale
		}
	}
	if sub && a.SubYScale != nil {
		return a.SubYScale
	}
	return orIdentity(a.YScale)
}

func orIdentity(s Scale) Scale {
	if s == nil {
		return Identity
	}
	return s
}
