package models

import (
	"gorm.io/datatypes"
)

// Rank is a named tier reached at a minimum total XP
type Rank struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	MinXP int    `json:"minXp"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// BadgeCondition identifies which counter a badge threshold applies to
type BadgeCondition string

const (
	ConditionProjectCount  BadgeCondition = "project_count"
	ConditionHourCount     BadgeCondition = "hour_count"
	ConditionCategoryCount BadgeCondition = "category_count"
	ConditionTechStack     BadgeCondition = "tech_stack"
)

// Badge is an achievement unlocked when its counter reaches the threshold
type Badge struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Icon            string         `json:"icon"`
	ConditionType   BadgeCondition `json:"conditionType"`
	ConditionDetail string         `json:"conditionDetail,omitempty"`
	Threshold       int            `json:"threshold"`
}

// Ranks is the static rank table, ordered by ascending XP threshold
var Ranks = []Rank{
	{ID: "novice", Title: "Script Kiddie", MinXP: 0, Icon: "Star", Color: "text-slate-500"},
	{ID: "apprentice", Title: "Code Monkey", MinXP: 1000, Icon: "Award", Color: "text-emerald-500"},
	{ID: "journeyman", Title: "Full Stack Dev", MinXP: 3000, Icon: "Zap", Color: "text-ocean-500"},
	{ID: "expert", Title: "Tech Lead", MinXP: 8000, Icon: "Medal", Color: "text-purple-500"},
	{ID: "master", Title: "SysAdmin Wizard", MinXP: 15000, Icon: "Crown", Color: "text-amber-500"},
	{ID: "legend", Title: "10x Engineer", MinXP: 30000, Icon: "Trophy", Color: "text-red-500"},
}

// Badges is the static badge table
var Badges = []Badge{
	{ID: "b_first_step", Title: "Hello World", Description: "Complete your first project.", Icon: "Flag", ConditionType: ConditionProjectCount, Threshold: 1},
	{ID: "b_builder", Title: "Builder", Description: "Complete 3 projects.", Icon: "Hammer", ConditionType: ConditionProjectCount, Threshold: 3},
	{ID: "b_architect", Title: "Architect", Description: "Complete 10 projects.", Icon: "Building", ConditionType: ConditionProjectCount, Threshold: 10},
	{ID: "b_grinder", Title: "Grinder", Description: "Log 10 hours of focus.", Icon: "Clock", ConditionType: ConditionHourCount, Threshold: 10},
	{ID: "b_master", Title: "Flow Master", Description: "Log 50 hours of focus.", Icon: "Zap", ConditionType: ConditionHourCount, Threshold: 50},
	{ID: "b_net_eng", Title: "Net Admin", Description: "Complete 2 Network projects.", Icon: "Network", ConditionType: ConditionCategoryCount, ConditionDetail: "Network", Threshold: 2},
	{ID: "b_cloud_arch", Title: "Cloud Native", Description: "Complete 3 Cloud projects.", Icon: "Cloud", ConditionType: ConditionCategoryCount, ConditionDetail: "Cloud", Threshold: 3},
	{ID: "b_security", Title: "White Hat", Description: "Complete 2 Security projects.", Icon: "Shield", ConditionType: ConditionCategoryCount, ConditionDetail: "Security", Threshold: 2},
	{ID: "b_py_snake", Title: "Snake Charmer", Description: "Use Python in 3 projects.", Icon: "Code", ConditionType: ConditionTechStack, ConditionDetail: "Python", Threshold: 3},
	{ID: "b_k8s_captain", Title: "Helmsman", Description: "Deploy 2 Kubernetes projects.", Icon: "Anchor", ConditionType: ConditionTechStack, ConditionDetail: "Kubernetes", Threshold: 2},
}

// StarterProjects is the roadmap every new user starts with.
// Entries are copied per user at registration; statuses are seeded as-is
// and the dependency resolver runs once afterwards.
var StarterProjects = []Project{
	{
		ID:             "p1_1",
		Title:          "Network Packet Analyzer",
		Level:          1,
		Status:         StatusDone,
		Category:       "Network",
		Position:       datatypes.NewJSONType(Coordinates{X: 100, Y: 100}),
		Dependencies:   datatypes.JSONSlice[string]{},
		Description:    "Create a Wireshark-lite in Python using raw sockets.",
		TechStack:      datatypes.JSONSlice[string]{"Python", "Scapy"},
		TimeSpentHours: 12,
		Complexity:     intPtr(2),
		Notes:          strPtr("## Key Learnings\n- Understanding OSI Layer 2 vs Layer 3\n- Raw socket manipulation in Linux requires root privileges."),
	},
	{
		ID:           "p1_2",
		Title:        "Custom DHCP Server",
		Level:        1,
		Status:       StatusUnlocked,
		Category:     "Network",
		Position:     datatypes.NewJSONType(Coordinates{X: 350, Y: 100}),
		Dependencies: datatypes.JSONSlice[string]{"p1_1"},
		Description:  "Understand low-level IP assignment and DORA process.",
		TechStack:    datatypes.JSONSlice[string]{"Python", "Sockets"},
		Complexity:   intPtr(3),
	},
	{
		ID:           "p1_3",
		Title:        "Subnet Calculator",
		Level:        1,
		Status:       StatusLocked,
		Category:     "Network",
		Position:     datatypes.NewJSONType(Coordinates{X: 600, Y: 100}),
		Dependencies: datatypes.JSONSlice[string]{"p1_2"},
		Description:  "VLSM and IPAM calculation tool.",
		TechStack:    datatypes.JSONSlice[string]{"Flask", "Bootstrap"},
		Complexity:   intPtr(1),
	},
	{
		ID:           "p2_1",
		Title:        "Homelab Infra",
		Level:        2,
		Status:       StatusLocked,
		Category:     "Infra",
		Position:     datatypes.NewJSONType(Coordinates{X: 100, Y: 300}),
		Dependencies: datatypes.JSONSlice[string]{"p1_1"},
		Description:  "The heart of your personal infrastructure.",
		TechStack:    datatypes.JSONSlice[string]{"Docker", "Ansible", "Pi"},
		Complexity:   intPtr(3),
	},
	{
		ID:           "p2_2",
		Title:        "AWS 3-Tier App",
		Level:        2,
		Status:       StatusLocked,
		Category:     "Cloud",
		Position:     datatypes.NewJSONType(Coordinates{X: 350, Y: 300}),
		Dependencies: datatypes.JSONSlice[string]{"p2_1"},
		Description:  "Clean Cloud deployment via Terraform (IaC).",
		TechStack:    datatypes.JSONSlice[string]{"AWS", "Terraform"},
		Complexity:   intPtr(3),
	},
	{
		ID:           "p2_3",
		Title:        "K8s Prod Cluster",
		Level:        2,
		Status:       StatusLocked,
		Category:     "Cloud",
		Position:     datatypes.NewJSONType(Coordinates{X: 600, Y: 300}),
		Dependencies: datatypes.JSONSlice[string]{"p2_1", "p2_2"},
		Description:  "Advanced orchestration and GitOps implementation.",
		TechStack:    datatypes.JSONSlice[string]{"Kubernetes", "ArgoCD"},
		Complexity:   intPtr(5),
	},
	{
		ID:           "p2_4",
		Title:        "SOC-in-a-Box",
		Level:        2,
		Status:       StatusLocked,
		Category:     "Security",
		Position:     datatypes.NewJSONType(Coordinates{X: 850, Y: 300}),
		Dependencies: datatypes.JSONSlice[string]{"p2_1"},
		Description:  "Security monitoring and threat detection.",
		TechStack:    datatypes.JSONSlice[string]{"ELK", "Wazuh"},
		Complexity:   intPtr(4),
	},
	{
		ID:           "p3_1",
		Title:        "Multi-Cloud K8s",
		Level:        3,
		Status:       StatusLocked,
		Category:     "Cloud",
		Position:     datatypes.NewJSONType(Coordinates{X: 350, Y: 500}),
		Dependencies: datatypes.JSONSlice[string]{"p2_3"},
		Description:  "Cluster federation and service mesh.",
		TechStack:    datatypes.JSONSlice[string]{"Rancher", "Istio"},
		Complexity:   intPtr(5),
	},
	{
		ID:           "p3_2",
		Title:        "Zero Trust Network",
		Level:        3,
		Status:       StatusLocked,
		Category:     "Security",
		Position:     datatypes.NewJSONType(Coordinates{X: 600, Y: 500}),
		Dependencies: datatypes.JSONSlice[string]{"p2_4"},
		Description:  "Modern security architecture without classic VPNs.",
		TechStack:    datatypes.JSONSlice[string]{"BeyondCorp", "WireGuard"},
		Complexity:   intPtr(4),
	},
	{
		ID:           "p4_1",
		Title:        "Smart Factory (Capstone)",
		Level:        4,
		Status:       StatusLocked,
		Category:     "Expert",
		Position:     datatypes.NewJSONType(Coordinates{X: 475, Y: 700}),
		Dependencies: datatypes.JSONSlice[string]{"p3_1", "p3_2"},
		Description:  "The Final Boss: IT + OT Convergence.",
		TechStack:    datatypes.JSONSlice[string]{"NSX-T", "IoT", "5G"},
		Complexity:   intPtr(5),
	},
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
