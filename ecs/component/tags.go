package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type GuardTag struct{}

var GuardTagComponent = NewComponent[GuardTag]()

// StaticTag marks level collision geometry.
type StaticTag struct{}

var StaticTagComponent = NewComponent[StaticTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
