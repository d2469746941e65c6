package seed

import "github.com/iamgoncalo/ecoplanta2/pkg/models"

// generateFactoryScene builds the fixed 3-D factory layout served to the
// fabric module. The layout is entirely static apart from derived ids.
func (g *Generator) generateFactoryScene() models.FactoryScene {
	vec := func(x, y, z float64) models.Vec3 { return models.Vec3{X: x, Y: y, Z: z} }

	objects := []models.SceneObject{
		{
			ID: DeriveID("scene", 0), Name: "Factory Floor", Type: "floor",
			Position: vec(0, 0, 0), Rotation: vec(0, 0, 0), Scale: vec(50, 0.1, 30),
			Color: "#C0C0C0", Metadata: map[string]any{"material": "concrete"},
		},
		{
			ID: DeriveID("scene", 1), Name: "CLT Assembly Station", Type: "machine",
			Position: vec(-15, 1.5, -8), Rotation: vec(0, 0, 0), Scale: vec(6, 3, 4),
			Color: "#2196F3", Metadata: map[string]any{"line": "Line A", "status": "running"},
		},
		{
			ID: DeriveID("scene", 2), Name: "Steel Framing Robot", Type: "machine",
			Position: vec(-5, 2, -8), Rotation: vec(0, 45, 0), Scale: vec(4, 4, 4),
			Color: "#FF9800", Metadata: map[string]any{"line": "Line B", "status": "running"},
		},
		{
			ID: DeriveID("scene", 3), Name: "Module Integration Bay", Type: "machine",
			Position: vec(8, 2, -5), Rotation: vec(0, 0, 0), Scale: vec(10, 4, 8),
			Color: "#4CAF50", Metadata: map[string]any{"line": "Line C", "status": "running"},
		},
		{
			ID: DeriveID("scene", 4), Name: "Smart Systems Lab", Type: "machine",
			Position: vec(8, 1.5, 8), Rotation: vec(0, 90, 0), Scale: vec(6, 3, 5),
			Color: "#9C27B0", Metadata: map[string]any{"line": "Line D", "status": "idle"},
		},
		{
			ID: DeriveID("scene", 5), Name: "Main Conveyor Belt", Type: "conveyor",
			Position: vec(0, 0.5, 0), Rotation: vec(0, 0, 0), Scale: vec(40, 0.3, 2),
			Color: "#607D8B", Metadata: map[string]any{"speed_m_per_min": 2.5},
		},
		{
			ID: DeriveID("scene", 6), Name: "Raw Materials Storage", Type: "storage",
			Position: vec(-20, 2, 5), Rotation: vec(0, 0, 0), Scale: vec(8, 4, 10),
			Color: "#795548", Metadata: map[string]any{"capacity_tonnes": 500},
		},
		{
			ID: DeriveID("scene", 7), Name: "QA Inspection Area", Type: "inspection",
			Position: vec(18, 1, 0), Rotation: vec(0, 0, 0), Scale: vec(5, 2, 5),
			Color: "#F44336", Metadata: map[string]any{"inspector_stations": 3},
		},
		{
			ID: DeriveID("scene", 8), Name: "Loading Dock", Type: "dock",
			Position: vec(24, 0.5, 0), Rotation: vec(0, 90, 0), Scale: vec(4, 1, 12),
			Color: "#FF5722", Metadata: map[string]any{"bays": 4},
		},
	}

	return models.FactoryScene{
		Objects: objects,
		Camera: models.SceneCamera{
			Position: vec(30, 25, 30),
			Target:   vec(0, 0, 0),
			FOV:      60,
		},
	}
}
