package input

// AxisFunc observes axis changes and receives the new clamped value.
type AxisFunc func(value float64)

type axisObserver struct {
	id int
	fn AxisFunc
}

// Axis accumulates signed contributions into a value clamped to [-1,1].
type Axis struct {
	id        string
	value     float64
	next      int
	observers []axisObserver
}

// NewAxis creates a centered axis.
func NewAxis(id string) *Axis {
	return &Axis{id: id}
}

// ID returns the axis name.
func (a *Axis) ID() string {
	return a.id
}

// Value returns the clamped axis value.
func (a *Axis) Value() float64 {
	return a.value
}

// Update adds delta to the axis and notifies observers when the value moved.
func (a *Axis) Update(delta float64) {
	if delta != delta {
		return
	}
	v := a.value + delta
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	if v == a.value {
		return
	}
	a.value = v
	for _, o := range a.observers {
		o.fn(v)
	}
}

// OnChange registers an observer. The returned func removes it.
func (a *Axis) OnChange(fn AxisFunc) func() {
	a.next++
	id := a.next
	a.observers = append(a.observers, axisObserver{id: id, fn: fn})
	return func() {
		for i, o := range a.observers {
			if o.id == id {
				a.observers = append(a.observers[:i:i], a.observers[i+1:]...)
				return
			}
		}
	}
}
