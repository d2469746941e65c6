package models

// Vec3 is a 3-D vector used by the factory scene.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SceneObject is one renderable object in the factory layout.
type SceneObject struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Position Vec3              `json:"position"`
	Rotation Vec3              `json:"rotation"`
	Scale    Vec3              `json:"scale"`
	Color    string            `json:"color"`
	Metadata map[string]any    `json:"metadata"`
}

// SceneCamera is the default viewpoint for the factory scene.
type SceneCamera struct {
	Position Vec3    `json:"position"`
	Target   Vec3    `json:"target"`
	FOV      float64 `json:"fov"`
}

// FactoryScene is the 3-D factory layout served to the fabric module.
type FactoryScene struct {
	Objects []SceneObject `json:"objects"`
	Camera  SceneCamera   `json:"camera"`
}
