package ws2812

// ConfigError reports a wiring description the driver refuses to use, such
// as an empty pin set or pins spread over more than one output register.
//
// It only ever surfaces while a device is being configured; once a Device
// exists, no later call can fail on configuration grounds. Fixing the
// configuration and configuring again is always safe.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "ws2812: invalid configuration: " + e.Reason
}
