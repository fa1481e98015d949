package suggest

import "github.com/m-mizutani/gollem"

// causeSchema creates the JSON schema for cause suggestions
func causeSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "CauseSuggestionResponse",
		Description: "Response containing suggested risk causes",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"causes": {
				Type:        gollem.TypeArray,
				Description: "List of suggested risk causes",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"description": {
							Type:        gollem.TypeString,
							Description: "Description of the risk cause",
						},
						"source": {
							Type:        gollem.TypeString,
							Description: "Origin of the cause, either Internal or Eksternal",
						},
					},
					Required: []string{"description", "source"},
				},
			},
		},
		Required: []string{"causes"},
	}
}

// analysisSchema creates the JSON schema for likelihood/impact suggestions
func analysisSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "AnalysisSuggestionResponse",
		Description: "Response containing a likelihood and impact assessment",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"suggestedLikelihood": {
				Type:        gollem.TypeString,
				Description: "Suggested likelihood level, a member of the likelihood scale",
			},
			"likelihoodJustification": {
				Type:        gollem.TypeString,
				Description: "Reasoning behind the suggested likelihood",
			},
			"suggestedImpact": {
				Type:        gollem.TypeString,
				Description: "Suggested impact level, a member of the impact scale",
			},
			"impactJustification": {
				Type:        gollem.TypeString,
				Description: "Reasoning behind the suggested impact",
			},
		},
		Required: []string{
			"suggestedLikelihood",
			"likelihoodJustification",
			"suggestedImpact",
			"impactJustification",
		},
	}
}

// controlSchema creates the JSON schema for control-measure suggestions
func controlSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ControlSuggestionResponse",
		Description: "Response containing suggested control measures",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"controls": {
				Type:        gollem.TypeArray,
				Description: "List of suggested control measures",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"description": {
							Type:        gollem.TypeString,
							Description: "Description of the control measure",
						},
						"suggestedControlType": {
							Type:        gollem.TypeString,
							Description: "Type of control, one of Prv, RM or Crr",
						},
						"justification": {
							Type:        gollem.TypeString,
							Description: "Reasoning behind the suggested control",
						},
					},
					Required: []string{"description", "suggestedControlType", "justification"},
				},
			},
		},
		Required: []string{"controls"},
	}
}

// kriSchema creates the JSON schema for KRI/tolerance suggestions
func kriSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "KRISuggestionResponse",
		Description: "Response containing a key risk indicator and tolerance",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"suggestedKRI": {
				Type:        gollem.TypeString,
				Description: "Measurable key risk indicator",
			},
			"kriJustification": {
				Type:        gollem.TypeString,
				Description: "Reasoning behind the suggested KRI",
			},
			"suggestedTolerance": {
				Type:        gollem.TypeString,
				Description: "Tolerance threshold for the KRI",
			},
			"toleranceJustification": {
				Type:        gollem.TypeString,
				Description: "Reasoning behind the suggested tolerance",
			},
		},
		Required: []string{
			"suggestedKRI",
			"kriJustification",
			"suggestedTolerance",
			"toleranceJustification",
		},
	}
}
