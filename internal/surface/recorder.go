package surface

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, R float64
	Color   Color
}

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          Color
}

// Recorder is an in-memory Surface. Circles and Lines hold the current frame
// only; Clear starts a new one. The totals survive across frames.
type Recorder struct {
	Circles []Circle
	Lines   []Line

	Clears       int
	TotalCircles int
	TotalLines   int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, R: radius, Color: c})
	r.TotalCircles++
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c})
	r.TotalLines++
}
