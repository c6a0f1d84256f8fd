package player

import "math"

// easeSight blends the current sight toward its target. dt is in seconds.
func (p *Player) easeSight(dt float64) {
	rate := p.sightCfg.Rate
	if p.endTriggered {
		rate = p.sightCfg.EndRate
	}
	p.sight += (p.sightTarget - p.sight) * rate * dt
	if math.Abs(p.sightTarget-p.sight) < p.sightCfg.Epsilon {
		p.sight = p.sightTarget
	}
}

// Sight returns the sight multiplier to render with. While dying it shrinks
// exponentially toward zero.
func (p *Player) Sight() float64 {
	if p.dying {
		return p.sight * math.Exp(-p.sightCfg.DeathDecay*p.DeathFraction())
	}
	return p.sight
}

// SightTarget returns the value the sight multiplier is easing toward.
func (p *Player) SightTarget() float64 {
	return p.sightTarget
}
