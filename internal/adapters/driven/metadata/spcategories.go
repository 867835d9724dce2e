package metadata

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/crewjam/saml"

	"github.com/philiph/saml-category-filter/internal/core/domain"
)

const (
	// EntityCategoryAttributeName is the well-known attribute name under which
	// service providers declare entity categories in mdattr:EntityAttributes.
	EntityCategoryAttributeName = "http://macedir.org/entity-category"

	// AssuranceCertificationAttributeName is the attribute name for assurance
	// certifications (e.g. SIRTFI).
	AssuranceCertificationAttributeName = "urn:oasis:names:tc:SAML:attribute:assurance-certification"
)

// SPInfo contains the attribute-release relevant metadata of one service
// provider entity.
type SPInfo struct {
	// EntityID is the unique identifier of the service provider.
	EntityID string

	// CategoriesDeclared reports whether the entity publishes an
	// entity-category attribute at all. An entity with the attribute present
	// but no values declares an empty category list, which the filter treats
	// differently from no declaration.
	CategoriesDeclared bool

	// EntityCategories contains the declared entity category URIs in
	// declaration order.
	EntityCategories []string

	// AssuranceCertifications contains assurance certification URIs.
	AssuranceCertifications []string
}

// DeclaredCategories converts the metadata view to the domain value.
func (i SPInfo) DeclaredCategories() domain.DeclaredCategories {
	if !i.CategoriesDeclared {
		return domain.NoDeclaredCategories()
	}
	return domain.DeclaredCategoriesOf(i.EntityCategories...)
}

// ParseSPCategories parses SAML metadata XML and returns the entity
// categories declared by every service provider entity it contains.
// Both single EntityDescriptor and aggregate EntitiesDescriptor documents are
// supported, including nested aggregates. Entities without an SPSSODescriptor
// are skipped.
//
// EntityAttributes live in EntityDescriptor/Extensions, which crewjam/saml
// does not expose, so they are extracted from the raw XML.
func ParseSPCategories(data []byte) ([]SPInfo, error) {
	if err := validateDescriptorShape(data); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse metadata XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty metadata document")
	}

	var infos []SPInfo
	collectSPInfos(root, &infos)
	return infos, nil
}

// validateDescriptorShape checks the document is SAML metadata at all.
func validateDescriptorShape(data []byte) error {
	var entities saml.EntitiesDescriptor
	if err := xml.Unmarshal(data, &entities); err == nil {
		return nil
	}

	var entity saml.EntityDescriptor
	if err := xml.Unmarshal(data, &entity); err == nil && entity.EntityID != "" {
		return nil
	}

	return fmt.Errorf("metadata is neither an EntityDescriptor nor an EntitiesDescriptor")
}

// collectSPInfos walks EntitiesDescriptor nesting and collects SP entities.
func collectSPInfos(el *etree.Element, infos *[]SPInfo) {
	switch el.Tag {
	case "EntitiesDescriptor":
		for _, child := range el.ChildElements() {
			collectSPInfos(child, infos)
		}
	case "EntityDescriptor":
		if info, ok := spInfoFromDescriptor(el); ok {
			*infos = append(*infos, info)
		}
	}
}

// spInfoFromDescriptor extracts entity categories from one EntityDescriptor.
// Returns false for entities without an entityID or an SPSSODescriptor.
func spInfoFromDescriptor(el *etree.Element) (SPInfo, bool) {
	entityID := el.SelectAttrValue("entityID", "")
	if entityID == "" {
		return SPInfo{}, false
	}
	if firstChildByTag(el, "SPSSODescriptor") == nil {
		return SPInfo{}, false
	}

	info := SPInfo{EntityID: entityID}

	extensions := firstChildByTag(el, "Extensions")
	if extensions == nil {
		return info, true
	}
	entityAttrs := firstChildByTag(extensions, "EntityAttributes")
	if entityAttrs == nil {
		return info, true
	}

	for _, attr := range childrenByTag(entityAttrs, "Attribute") {
		switch attr.SelectAttrValue("Name", "") {
		case EntityCategoryAttributeName:
			info.CategoriesDeclared = true
			info.EntityCategories = append(info.EntityCategories, attributeValues(attr)...)
		case AssuranceCertificationAttributeName:
			info.AssuranceCertifications = append(info.AssuranceCertifications, attributeValues(attr)...)
		}
	}
	return info, true
}

// attributeValues returns the trimmed AttributeValue texts of an Attribute.
func attributeValues(attr *etree.Element) []string {
	var values []string
	for _, v := range childrenByTag(attr, "AttributeValue") {
		if text := strings.TrimSpace(v.Text()); text != "" {
			values = append(values, text)
		}
	}
	return values
}

// firstChildByTag returns the first child element with the given local name,
// regardless of namespace prefix.
func firstChildByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// childrenByTag returns all child elements with the given local name.
func childrenByTag(el *etree.Element, tag string) []*etree.Element {
	var children []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			children = append(children, child)
		}
	}
	return children
}
