package brain

import "math"

// maybeConnect rolls for a new connection from point i. The roll only happens once the
// point's cooldown has elapsed; the chance scales with the frame duration.
func (f *Field) maybeConnect(i int, dt float64) {
	if len(f.Points) < 2 {
		return
	}
	p := &f.Points[i]
	if f.Clock-p.LastConnection <= f.cfg.ConnectCooldownMs {
		return
	}

	chance := f.cfg.NeuronType(p.Kind).ConnectionProbability
	if f.cfg.ConnectFrameMs > 0 {
		chance *= dt / f.cfg.ConnectFrameMs
	}
	if f.rng.Float64() >= chance {
		return
	}

	// Uniform pick among the other points
	j := f.rng.Intn(len(f.Points) - 1)
	if j >= i {
		j++
	}
	f.Connect(i, j)
}

// Connect tries to create an edge from point i to point j and reports whether it did.
// Both endpoints must be below their kind's connection cap and the points must be
// within ConnectDistanceFactor of the generation radius.
func (f *Field) Connect(i, j int) bool {
	if i == j || i < 0 || j < 0 || i >= len(f.Points) || j >= len(f.Points) {
		return false
	}
	src := &f.Points[i]
	dst := &f.Points[j]

	if f.degree[i] >= f.cfg.NeuronType(src.Kind).MaxConnections {
		return false
	}
	if f.degree[j] >= f.cfg.NeuronType(dst.Kind).MaxConnections {
		return false
	}

	maxDist := f.BaseRadius * f.cfg.ConnectDistanceFactor
	dist := dst.Pos.Sub(src.Pos).Len()
	if dist > maxDist {
		return false
	}

	strength := f.cfg.MinStrength
	if maxDist > 0 {
		strength = math.Max(f.cfg.MinStrength, 1-dist/maxDist)
	}

	f.Edges = append(f.Edges, Edge{
		Start:     src.Pos,
		End:       dst.Pos,
		From:      i,
		To:        j,
		Life:      1.0,
		Strength:  strength,
		StartKind: src.Kind,
		EndKind:   dst.Kind,
		Signals:   []Signal{f.newSignal()},
	})
	f.degree[i]++
	f.degree[j]++
	src.LastConnection = f.Clock

	return true
}
