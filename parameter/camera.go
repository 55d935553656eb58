package parameter

// Horizontal camera dead zone
// The camera only pans sideways when the plane enters the margin at either edge
const (
	// CameraDeadZoneMarginX is the horizontal margin in cells from the viewport edge
	// The plane entering this margin pans the camera so it sits on the margin line
	CameraDeadZoneMarginX = 12

	// CameraCellAspect is the height of a terminal cell over its width
	CameraCellAspect = 2.0
)
