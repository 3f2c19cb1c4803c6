package bounds

import "github.com/philipparndt/gobounds/pkg/geometry"

// Octant names: north is the upper Z half, west the upper Y half and
// back the upper X half of the box.

// octantBounds returns the corners of an octant. hx, hy and hz select the
// upper half of the box on each axis.
func (b *AlignedBox) octantBounds(hx, hy, hz bool) *AlignedBox {
	m := b.Center()
	pick := func(high bool, lo, mid, hi float64) (float64, float64) {
		if high {
			return mid, hi
		}
		return lo, mid
	}
	lx, ux := pick(hx, b.lower.X, m.X, b.upper.X)
	ly, uy := pick(hy, b.lower.Y, m.Y, b.upper.Y)
	lz, uz := pick(hz, b.lower.Z, m.Z, b.upper.Z)
	return NewAlignedBox(geometry.NewVector3(lx, ly, lz), geometry.NewVector3(ux, uy, uz)).WithTolerance(b.tol)
}

// NorthWestFront is the octant with low x, high y, high z
func (b *AlignedBox) NorthWestFront() *AlignedBox { return b.octantBounds(false, true, true) }

// NorthWestBack is the octant with high x, high y, high z
func (b *AlignedBox) NorthWestBack() *AlignedBox { return b.octantBounds(true, true, true) }

// NorthEastFront is the octant with low x, low y, high z
func (b *AlignedBox) NorthEastFront() *AlignedBox { return b.octantBounds(false, false, true) }

// NorthEastBack is the octant with high x, low y, high z
func (b *AlignedBox) NorthEastBack() *AlignedBox { return b.octantBounds(true, false, true) }

// SouthWestFront is the octant with low x, high y, low z
func (b *AlignedBox) SouthWestFront() *AlignedBox { return b.octantBounds(false, true, false) }

// SouthWestBack is the octant with high x, high y, low z
func (b *AlignedBox) SouthWestBack() *AlignedBox { return b.octantBounds(true, true, false) }

// SouthEastFront is the octant with low x, low y, low z
func (b *AlignedBox) SouthEastFront() *AlignedBox { return b.octantBounds(false, false, false) }

// SouthEastBack is the octant with high x, low y, low z
func (b *AlignedBox) SouthEastBack() *AlignedBox { return b.octantBounds(true, false, false) }

// Octants returns all eight octants in the order NorthWestFront,
// NorthWestBack, NorthEastFront, NorthEastBack, SouthWestFront,
// SouthWestBack, SouthEastFront, SouthEastBack.
func (b *AlignedBox) Octants() [8]*AlignedBox {
	return [8]*AlignedBox{
		b.NorthWestFront(), b.NorthWestBack(),
		b.NorthEastFront(), b.NorthEastBack(),
		b.SouthWestFront(), b.SouthWestBack(),
		b.SouthEastFront(), b.SouthEastBack(),
	}
}
