package graph

// Container describes a docker image together with the resource limits
// the emulator applies to each instance.
type Container struct {
	Image       string
	Tag         string
	MemoryLimit uint64 // bytes
	CPUShare    float32
}

// Ref returns the image reference in image:tag form.
func (c Container) Ref() string {
	tag := c.Tag
	if tag == "" {
		tag = "latest"
	}
	return c.Image + ":" + tag
}

// DeviceContainer is a container image emulating end-user devices.
// A single instance stands in for ScalingFactor real devices and is
// distributed over edge routers with an expectation of AverageCount
// instances per router.
type DeviceContainer struct {
	Container
	ScalingFactor int
	AverageCount  float32
}

// FogContainer is a container image eligible to run as a fog node.
// Cost is the deployment cost of one instance, MaxClients the number of
// device connections one instance can serve.
type FogContainer struct {
	Container
	Cost       float32
	MaxClients int
}

// EmulationBinding attaches a concrete emulated container to a node.
// Scaling carries the device multiplicity of the bound container; it is
// 1 for anything that is not a scaled device image.
type EmulationBinding struct {
	IP        string
	Container Container
	Scaling   int
}
