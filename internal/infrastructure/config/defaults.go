package config

// ApplyDefaults fills optional fields left unset in the JSON files.
func (c *GameConfig) ApplyDefaults() {
	if g := c.Game; g != nil {
		if g.Display.Title == "" {
			g.Display.Title = "Pevious"
		}
		if g.Display.Scale <= 0 {
			g.Display.Scale = 1
		}
		if g.Session.ReadyDuration <= 0 {
			g.Session.ReadyDuration = 3
		}

		ctl := &g.Controls
		for _, k := range []struct {
			dst *string
			def string
		}{
			{&ctl.Fire, "Space"},
			{&ctl.Special, "P"},
			{&ctl.Confirm, "Enter"},
			{&ctl.Copy, "C"},
		} {
			if *k.dst == "" {
				*k.dst = k.def
			}
		}

		h := &g.Bullets.Homing
		if h.RingRadiusMul <= 0 {
			h.RingRadiusMul = 2
		}
		if h.RingBlink <= 0 {
			h.RingBlink = 0.015
		}
		for _, s := range []*float64{
			&g.Enemies.Normal.RadiusScale, &g.Enemies.Fast.RadiusScale, &g.Enemies.Heavy.RadiusScale,
			&g.Enemies.Normal.BulletSpeedScale, &g.Enemies.Fast.BulletSpeedScale, &g.Enemies.Heavy.BulletSpeedScale,
		} {
			if *s <= 0 {
				*s = 1
			}
		}
	}
	if c.Assets != nil && c.Assets.Images == nil {
		c.Assets.Images = map[string]string{}
	}
	if c.Assets != nil && c.Assets.Sounds == nil {
		c.Assets.Sounds = map[string]string{}
	}
}
