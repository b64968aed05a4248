package seed

import "github.com/fr0stylo/enms/internal/app/domain"

const exampleDevice = "Washington"

var defaultPools = []map[string]any{
	{
		"name":        "All objects",
		"description": "All objects",
	},
	{
		"name":            "Devices only",
		"description":     "Devices only",
		"link_name":       "^$",
		"link_name_regex": "y",
	},
	{
		"name":              "Links only",
		"description":       "Links only",
		"device_name":       "^$",
		"device_name_regex": "y",
	},
}

// workflowFixture describes one example workflow. Members follow Start and
// End; edges and positions index into that combined list.
type workflowFixture struct {
	Name            string
	Description     string
	Vendor          string
	OperatingSystem string
	Services        []map[string]any
	Members         []string
	Edges           [][2]int
	Positions       [][2]float64
}

// A "devices" key marks services that target the example device.
func defaultServices() []map[string]any {
	return []map[string]any{
		{
			"type":        domain.TypeSwissArmyKnife,
			"name":        domain.StartJob,
			"description": "Start point of a workflow",
			"hidden":      true,
		},
		{
			"type":        domain.TypeSwissArmyKnife,
			"name":        domain.EndJob,
			"description": "End point of a workflow",
			"hidden":      true,
		},
		{
			"type":         domain.TypeConfigureBGP,
			"name":         "napalm_configure_bgp_1",
			"description":  "Configure BGP Peering with Napalm",
			"devices":      nil,
			"local_as":     100,
			"loopback":     "Lo100",
			"loopback_ip":  "100.1.1.1",
			"neighbor_ip":  "100.1.2.1",
			"remote_as":    200,
			"vrf_name":     "configure_BGP_test",
			"waiting_time": 0,
		},
	}
}

var vrfPositions = [][2]float64{{-20, 0}, {20, 0}, {0, -15}, {0, -5}, {0, 5}, {0, 15}}

var vrfEdges = [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}}

func netmikoWorkflow() workflowFixture {
	return workflowFixture{
		Name:            "Netmiko_VRF_workflow",
		Description:     "Create and delete a VRF with Netmiko",
		Vendor:          "Arista",
		OperatingSystem: "eos",
		Services: []map[string]any{
			{
				"type":                domain.TypeNetmikoConfiguration,
				"name":                "netmiko_create_vrf_test",
				"description":         `Create a VRF "test" with Netmiko`,
				"waiting_time":        0,
				"devices":             nil,
				"vendor":              "Arista",
				"operating_system":    "eos",
				"driver":              "arista_eos",
				"global_delay_factor": "1.0",
				"content":             "vrf definition test",
				"enable_mode":         "y",
				"fast_cli":            "y",
			},
			{
				"type":             domain.TypeNetmikoValidation,
				"name":             "netmiko_check_vrf_test",
				"description":      `Check that the vrf "test" is configured`,
				"waiting_time":     0,
				"devices":          nil,
				"vendor":           "Arista",
				"operating_system": "eos",
				"driver":           "arista_eos",
				"command":          "show vrf",
				"content_match":    "test",
				"fast_cli":         "y",
			},
			{
				"type":                domain.TypeNetmikoConfiguration,
				"name":                "netmiko_delete_vrf_test",
				"description":         `Delete VRF "test"`,
				"waiting_time":        1,
				"devices":             nil,
				"vendor":              "Arista",
				"operating_system":    "eos",
				"driver":              "arista_eos",
				"global_delay_factor": "1.0",
				"content":             "no vrf definition test",
				"enable_mode":         "y",
				"fast_cli":            "y",
			},
			{
				"type":                domain.TypeNetmikoValidation,
				"name":                "netmiko_check_no_vrf_test",
				"description":         `Check that the vrf "test" is NOT configured`,
				"waiting_time":        0,
				"devices":             nil,
				"vendor":              "Arista",
				"operating_system":    "eos",
				"driver":              "arista_eos",
				"command":             "show vrf",
				"content_match":       "^((?!test).)*$",
				"content_match_regex": "y",
				"fast_cli":            "y",
			},
		},
		Members:   []string{"netmiko_create_vrf_test", "netmiko_check_vrf_test", "netmiko_delete_vrf_test", "netmiko_check_no_vrf_test"},
		Edges:     vrfEdges,
		Positions: vrfPositions,
	}
}

func napalmWorkflow() workflowFixture {
	return workflowFixture{
		Name:            "Napalm_VRF_workflow",
		Description:     "Create and delete a VRF with Napalm",
		Vendor:          "Arista",
		OperatingSystem: "eos",
		Services: []map[string]any{
			{
				"type":             domain.TypeNapalmConfiguration,
				"name":             "napalm_create_vrf_test",
				"description":      `Create a VRF "test" with Napalm`,
				"waiting_time":     0,
				"devices":          nil,
				"driver":           "eos",
				"vendor":           "Arista",
				"operating_system": "eos",
				"content_type":     "simple",
				"action":           "load_merge_candidate",
				"content":          "vrf definition test\n",
			},
			{
				"type":         domain.TypeNapalmRollback,
				"name":         "Napalm eos Rollback",
				"driver":       "eos",
				"description":  "Rollback a configuration with Napalm eos",
				"devices":      nil,
				"waiting_time": 0,
			},
		},
		Members:   []string{"napalm_create_vrf_test", "netmiko_check_vrf_test", "Napalm eos Rollback", "netmiko_check_no_vrf_test"},
		Edges:     vrfEdges,
		Positions: vrfPositions,
	}
}

var payloadGetters = []string{"get_facts", "get_interfaces", "get_interfaces_ip", "get_config"}

// payloadTransferWorkflow calls this service's own REST API as the seeded admin.
func payloadTransferWorkflow(restBaseURL, adminPassword string) workflowFixture {
	services := []map[string]any{{
		"type":          domain.TypeRestCall,
		"name":          "GET_Washington",
		"description":   "Use GET ReST call on Washington",
		"username":      "admin",
		"password":      adminPassword,
		"waiting_time":  0,
		"devices":       nil,
		"content_match": "",
		"call_type":     "GET",
		"url":           restBaseURL + "/rest/instance/device/" + exampleDevice,
		"payload":       "",
	}}
	members := []string{"GET_Washington"}
	for _, getter := range payloadGetters {
		services = append(services, map[string]any{
			"type":          domain.TypeNapalmGetters,
			"name":          getter,
			"description":   "Getter: " + getter,
			"waiting_time":  0,
			"devices":       nil,
			"driver":        "eos",
			"content_match": "",
			"getters":       []string{getter},
		})
		members = append(members, getter)
	}
	services = append(services, map[string]any{
		"type":         domain.TypeSwissArmyKnife,
		"name":         "process_payload1",
		"description":  "Process Payload in example workflow",
		"waiting_time": 0,
		"devices":      nil,
	})
	members = append(members, "process_payload1")

	return workflowFixture{
		Name:            "payload_transfer_workflow",
		Description:     "ReST call, Napalm getters, etc",
		Vendor:          "Arista",
		OperatingSystem: "eos",
		Services:        services,
		Members:         members,
		Edges:           [][2]int{{0, 2}, {2, 3}, {2, 4}, {3, 5}, {5, 6}, {6, 7}, {4, 7}, {7, 1}},
		Positions:       [][2]float64{{-20, 0}, {50, 0}, {-5, 0}, {-5, -10}, {15, 10}, {15, -10}, {30, -10}, {30, 0}},
	}
}
