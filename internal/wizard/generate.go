package wizard

import (
	"bytes"
	"strings"
	"text/template"
)

const configTemplate = `# emufog configuration
# Documentation: https://github.com/unly/emufog

max_fog_nodes: {{ .MaxFogNodes }}
cost_threshold: {{ .CostThreshold }}
backbone_degree_factor: 0.6
device_sampling: deterministic
seed: 1
time_measuring: false
base_address: 10.0.0.1

device_node_types:
  - image: {{ .DeviceImageName }}
    tag: {{ .DeviceImageTag }}
    memory_limit: 268435456
    cpu_share: 0.5
    scaling_factor: 1
    average_count: 2.5

fog_node_types:
  - image: {{ .FogImageName }}
    tag: {{ .FogImageTag }}
    memory_limit: 1073741824
    cpu_share: 1.0
    cost: 5.0
    max_clients: 50
`

type templateData struct {
	MaxFogNodes     int
	CostThreshold   float32
	DeviceImageName string
	DeviceImageTag  string
	FogImageName    string
	FogImageTag     string
}

// GenerateConfig renders the starter config file for the given answers.
func GenerateConfig(answers Answers) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplate)
	if err != nil {
		return "", err
	}

	deviceName, deviceTag := splitImage(answers.DeviceImage)
	fogName, fogTag := splitImage(answers.FogImage)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		MaxFogNodes:     answers.MaxFogNodes,
		CostThreshold:   answers.CostThreshold,
		DeviceImageName: deviceName,
		DeviceImageTag:  deviceTag,
		FogImageName:    fogName,
		FogImageTag:     fogTag,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// splitImage separates "image:tag" into its parts, defaulting the tag to
// latest.
func splitImage(image string) (string, string) {
	if idx := strings.LastIndex(image, ":"); idx != -1 {
		return image[:idx], image[idx+1:]
	}
	return image, "latest"
}
