package ui

// RenderGaugePanel wraps gauge content with a titled border. The gauge
// itself is rasterized by the caller so ui stays free of gauge types.
func RenderGaugePanel(width, height int, title, content string, active bool) string {
	style := StylePanelBorder
	if active {
		style = StylePanelActive
	}
	return style.Width(width - 2).Height(height - 2).Render(StylePanelTitle.Render(title) + "\n" + content)
}
