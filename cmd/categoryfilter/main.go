// Command categoryfilter runs the entity-category attribute filter once
// against a policy file and a service provider from a metadata file, and
// prints the resulting requested-attribute list. Intended for federation
// operators debugging attribute-release policies.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/philiph/saml-category-filter/internal/adapters/driven/metadata"
	"github.com/philiph/saml-category-filter/internal/adapters/driven/policyconfig"
	"github.com/philiph/saml-category-filter/internal/adapters/driving/pipeline"
	"github.com/philiph/saml-category-filter/internal/core/domain"
)

func main() {
	policyPath := flag.String("policy", "", "path to the category policy file (YAML or JSON)")
	metadataPath := flag.String("metadata", "", "path to the SAML metadata file")
	entityID := flag.String("entity", "", "entityID of the destination service provider")
	requested := flag.String("requested", "", "comma-separated requested attributes (empty means none requested)")
	verbose := flag.Bool("v", false, "log filter decisions")
	flag.Parse()

	if *policyPath == "" || *metadataPath == "" || *entityID == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	policy, err := policyconfig.NewFilePolicySource(*policyPath, policyconfig.WithLogger(logger)).
		Load(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading policy: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(*metadataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading metadata: %v\n", err)
		os.Exit(1)
	}

	infos, err := metadata.ParseSPCategories(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing metadata: %v\n", err)
		os.Exit(1)
	}
	source := metadata.NewInMemoryCategorySource(infos...)

	requestedAttrs := domain.AbsentRequestedAttributes()
	if *requested != "" {
		var names []string
		for _, name := range strings.Split(*requested, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				names = append(names, trimmed)
			}
		}
		requestedAttrs = domain.RequestedAttributesFromNames(names...)
	}

	rc := pipeline.NewAuthnContextFromSource(*entityID, source, requestedAttrs)

	filter := pipeline.NewCategoryFilter(policy, pipeline.WithLogger(logger))
	filter.Process(rc)

	result := rc.RequestedAttributes()
	if !result.Present() {
		fmt.Println("requested attributes: (none)")
		return
	}
	fmt.Printf("requested attributes: %s\n", strings.Join(result.Names(), ", "))
}
