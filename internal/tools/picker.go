package tools

// ColorPicker reads the color under the pointer into the active color.
type ColorPicker struct{}

// NewColorPicker returns a color picker.
func NewColorPicker() *ColorPicker { return &ColorPicker{} }

func (p *ColorPicker) Kind() Kind   { return KindColorPicker }
func (p *ColorPicker) Name() string { return KindColorPicker.String() }

func (p *ColorPicker) Update(ctx Context) Outcome {
	if !ctx.Pointer.Pressed || !ctx.hovering() {
		return Outcome{}
	}
	return Outcome{Picked: ctx.Canvas.AtCell(ctx.Cell), HasPick: true}
}
