package domain

import "testing"

func TestDefaultPoolsPartitionInventory(t *testing.T) {
	t.Parallel()

	devicesOnly := Pool{Name: "Devices only", PoolFilters: PoolFilters{LinkName: "^$", LinkNameRegex: true}}
	linksOnly := Pool{Name: "Links only", PoolFilters: PoolFilters{DeviceName: "^$", DeviceNameRegex: true}}
	all := Pool{Name: "All objects"}

	device := Device{Name: "Washington", Vendor: "Arista"}
	link := Link{Name: "Washington-Boston"}

	cases := []struct {
		pool       Pool
		wantDevice bool
		wantLink   bool
	}{
		{all, true, true},
		{devicesOnly, true, false},
		{linksOnly, false, true},
	}
	for _, tc := range cases {
		gotDevice, err := tc.pool.MatchDevice(device)
		if err != nil {
			t.Fatalf("%s match device: %v", tc.pool.Name, err)
		}
		gotLink, err := tc.pool.MatchLink(link)
		if err != nil {
			t.Fatalf("%s match link: %v", tc.pool.Name, err)
		}
		if gotDevice != tc.wantDevice || gotLink != tc.wantLink {
			t.Fatalf("%s: device=%v link=%v, want device=%v link=%v", tc.pool.Name, gotDevice, gotLink, tc.wantDevice, tc.wantLink)
		}
	}
}

func TestPoolSubstringAndRegexFilters(t *testing.T) {
	t.Parallel()

	pool := Pool{PoolFilters: PoolFilters{DeviceVendor: "Ari", DeviceLocation: "^(East|West)$", DeviceLocationRegex: true}}
	ok, err := pool.MatchDevice(Device{Vendor: "Arista", Location: "East"})
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	ok, err = pool.MatchDevice(Device{Vendor: "Arista", Location: "North"})
	if err != nil || ok {
		t.Fatalf("expected no match, got ok=%v err=%v", ok, err)
	}
}

func TestMatchContentSupportsLookahead(t *testing.T) {
	t.Parallel()

	pattern := "^((?!test).)*$"
	ok, err := MatchContent("vrf default", pattern, true)
	if err != nil || !ok {
		t.Fatalf("expected match without test, got ok=%v err=%v", ok, err)
	}
	ok, err = MatchContent("vrf test", pattern, true)
	if err != nil || ok {
		t.Fatalf("expected no match with test, got ok=%v err=%v", ok, err)
	}
	if _, err := MatchContent("x", "(", true); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestPoolSerializedFlattensFilters(t *testing.T) {
	t.Parallel()

	pool := Pool{Name: "Links only", PoolFilters: PoolFilters{DeviceName: "^$", DeviceNameRegex: true}}
	out := pool.Serialized()
	if out["device_name"] != "^$" || out["device_name_regex"] != true {
		t.Fatalf("unexpected serialized pool: %v", out)
	}
	if _, ok := out["link_location_regex"]; !ok {
		t.Fatal("expected every filter flag in serialized pool")
	}
}
