package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fr0stylo/enms/internal/app/domain"
)

func call(method, path, user, password string, body any) (int, map[string]any) {
	reader := bytes.NewReader(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, api.URL+path, reader)
	Expect(err).NotTo(HaveOccurred())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.SetBasicAuth(user, password)
	}

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.ContentLength != 0 {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp.StatusCode, decoded
}

func query(path string) []map[string]any {
	req, err := http.NewRequest(http.MethodGet, api.URL+path, nil)
	Expect(err).NotTo(HaveOccurred())
	req.SetBasicAuth("admin", "admin")

	resp, err := http.DefaultClient.Do(req)
	Expect(err).NotTo(HaveOccurred())
	defer resp.Body.Close()
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	var decoded []map[string]any
	Expect(json.NewDecoder(resp.Body).Decode(&decoded)).To(Succeed())
	return decoded
}

func admin(method, path string, body any) (int, map[string]any) {
	return call(method, path, "admin", "admin", body)
}

func count(kind domain.Kind) int64 {
	n, err := store.Count(context.Background(), kind)
	Expect(err).NotTo(HaveOccurred())
	return n
}

var _ = Describe("REST API", func() {
	Context("when checking liveness", func() {
		It("answers without credentials", func() {
			status, body := call(http.MethodGet, "/rest/is_alive", "", "", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("alive", true))
		})
	})

	Context("when authenticating", func() {
		It("rejects missing credentials", func() {
			status, _ := call(http.MethodGet, "/rest/instance/device/Washington", "", "", nil)
			Expect(status).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a wrong password", func() {
			status, _ := call(http.MethodGet, "/rest/instance/device/Washington", "admin", "nope", nil)
			Expect(status).To(Equal(http.StatusUnauthorized))
		})

		It("stops accepting a rotated password and a deleted user", func() {
			status, _ := admin(http.MethodPost, "/rest/instance/user", map[string]any{"name": "operator", "password": "first"})
			Expect(status).To(Equal(http.StatusOK))

			status, _ = call(http.MethodGet, "/rest/instance/device/Washington", "operator", "first", nil)
			Expect(status).To(Equal(http.StatusOK))

			status, _ = admin(http.MethodPut, "/rest/instance/user", map[string]any{"name": "operator", "password": "second"})
			Expect(status).To(Equal(http.StatusOK))

			status, _ = call(http.MethodGet, "/rest/instance/device/Washington", "operator", "first", nil)
			Expect(status).To(Equal(http.StatusUnauthorized))
			status, _ = call(http.MethodGet, "/rest/instance/device/Washington", "operator", "second", nil)
			Expect(status).To(Equal(http.StatusOK))

			status, _ = admin(http.MethodDelete, "/rest/instance/user/operator", nil)
			Expect(status).To(Equal(http.StatusOK))
			status, _ = call(http.MethodGet, "/rest/instance/device/Washington", "operator", "second", nil)
			Expect(status).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("when managing instances", func() {
		It("creates a service once and updates it on repost", func() {
			before := count(domain.KindService)

			status, body := admin(http.MethodPost, "/rest/instance/service", map[string]any{"name": "new_service", "vendor": "Cisco"})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("vendor", "Cisco"))
			Expect(count(domain.KindService)).To(Equal(before + 1))

			status, body = admin(http.MethodPost, "/rest/instance/service", map[string]any{"name": "new_service", "model": "Cisco"})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("model", "Cisco"))
			Expect(body).To(HaveKeyWithValue("vendor", "Cisco"))
			Expect(count(domain.KindService)).To(Equal(before + 1))
		})

		It("serializes a seeded device without credentials", func() {
			status, body := admin(http.MethodGet, "/rest/instance/device/Washington", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveLen(14))
			Expect(body).To(HaveKeyWithValue("vendor", "Arista"))
			Expect(body).NotTo(HaveKey("password"))
		})

		It("updates a seeded getter description", func() {
			status, body := admin(http.MethodGet, "/rest/instance/service/get_facts", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("description", "Getter: get_facts"))

			status, _ = admin(http.MethodPut, "/rest/instance/service", map[string]any{"name": "get_facts", "description": "Get facts"})
			Expect(status).To(Equal(http.StatusOK))

			_, body = admin(http.MethodGet, "/rest/instance/service/get_facts", nil)
			Expect(body).To(HaveKeyWithValue("description", "Get facts"))
		})

		It("refuses to update a missing object", func() {
			status, body := admin(http.MethodPut, "/rest/instance/device", map[string]any{"name": "Atlantis"})
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(HaveKey("error"))
		})

		It("rejects unknown object types and nameless bodies", func() {
			status, _ := admin(http.MethodGet, "/rest/instance/router/Washington", nil)
			Expect(status).To(Equal(http.StatusBadRequest))

			status, _ = admin(http.MethodPost, "/rest/instance/device", map[string]any{"vendor": "Cisco"})
			Expect(status).To(Equal(http.StatusBadRequest))
		})

		It("deletes a link", func() {
			status, body := admin(http.MethodDelete, "/rest/instance/link/Washington-Denver", nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveKeyWithValue("deleted", "Washington-Denver"))

			status, _ = admin(http.MethodGet, "/rest/instance/link/Washington-Denver", nil)
			Expect(status).To(Equal(http.StatusNotFound))
		})
	})

	Context("when running jobs", func() {
		It("runs the ReST call service against this API", func() {
			status, body := admin(http.MethodPost, "/rest/run_job", map[string]any{"name": "GET_Washington", "async": 0})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveLen(3))
			Expect(body).To(HaveKeyWithValue("success", true))

			results := body["results"].(map[string]any)
			device := results["devices"].(map[string]any)["Washington"].(map[string]any)
			output := device["output"].(map[string]any)
			Expect(output).To(HaveKeyWithValue("status_code", BeNumerically("==", http.StatusOK)))
			Expect(output["response"]).To(HaveKeyWithValue("name", "Washington"))
		})

		It("reports a failed workflow without a device driver", func() {
			status, body := admin(http.MethodPost, "/rest/run_job", map[string]any{"name": "Netmiko_VRF_workflow", "async": false})
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(HaveLen(3))
			Expect(body).To(HaveKeyWithValue("success", false))

			jobs := body["results"].(map[string]any)["jobs"].(map[string]any)
			Expect(jobs).To(HaveKey("netmiko_create_vrf_test"))
			Expect(jobs).NotTo(HaveKey(domain.EndJob))

			id := body["id"].(string)
			status, run := admin(http.MethodGet, "/rest/result/Netmiko_VRF_workflow/"+id, nil)
			Expect(status).To(Equal(http.StatusOK))
			Expect(run).To(HaveKeyWithValue("finished", true))
			Expect(run).To(HaveKeyWithValue("success", false))
		})

		It("starts an async run and records its outcome", func() {
			status, body := admin(http.MethodPost, "/rest/run_job", map[string]any{"name": "GET_Washington", "async": true})
			Expect(status).To(Equal(http.StatusAccepted))
			id := body["id"].(string)

			Eventually(func() any {
				_, run := admin(http.MethodGet, "/rest/result/GET_Washington/"+id, nil)
				return run["finished"]
			}).Should(Equal(true))
		})

		It("returns 404 for unknown jobs and runs", func() {
			status, _ := admin(http.MethodPost, "/rest/run_job", map[string]any{"name": "missing_job"})
			Expect(status).To(Equal(http.StatusNotFound))

			status, _ = admin(http.MethodGet, "/rest/result/GET_Washington/not-a-run", nil)
			Expect(status).To(Equal(http.StatusNotFound))
		})
	})

	Context("when querying", func() {
		It("filters inventory by pool", func() {
			Expect(query("/rest/query/device?pool=Devices%20only")).To(HaveLen(2))
			Expect(query("/rest/query/device?pool=Links%20only")).To(BeEmpty())
			Expect(query("/rest/query/device")).To(HaveLen(int(count(domain.KindDevice))))
		})

		It("rejects pools on services", func() {
			status, _ := admin(http.MethodGet, "/rest/query/service?pool=Devices%20only", nil)
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})
})
