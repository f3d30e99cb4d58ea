package wheel

//go:generate stringer -type=HitZone -trimprefix=Zone

// HitZone is the part of the picker the pointer is over.
type HitZone int

const (
	// ZoneOutside - neither ring nor triangle
	ZoneOutside HitZone = iota
	// ZoneRing - hue ring (annulus between inner and outer radius)
	ZoneRing
	// ZoneTriangle - everything inside the inner radius
	ZoneTriangle
)
