package handlers

import "github.com/gyeongsan/ansimtalk-backend/internal/models"

// Simulated accuracy figures for the 15-minute congestion prediction panel.
var predictionStats = []models.PredictionStat{
	{Hour: "08시", Accuracy: 94.2, MAE: 3.1},
	{Hour: "10시", Accuracy: 97.8, MAE: 1.9},
	{Hour: "12시", Accuracy: 96.5, MAE: 2.4},
	{Hour: "14시", Accuracy: 98.1, MAE: 1.5},
	{Hour: "16시", Accuracy: 93.4, MAE: 3.8},
	{Hour: "18시", Accuracy: 91.2, MAE: 4.9},
	{Hour: "20시", Accuracy: 95.7, MAE: 2.2},
	{Hour: "22시", Accuracy: 98.4, MAE: 1.2},
}

type worstLink struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Error   float64 `json:"error"`
	Samples int     `json:"samples"`
}

var worstLinks = []worstLink{
	{ID: "TR-03", Name: "경산IC 진입로", Error: 5.4, Samples: 142},
	{ID: "TR-01", Name: "경산역-옥산네거리", Error: 4.8, Samples: 210},
	{ID: "TR-05", Name: "영남대 서문 도로", Error: 4.1, Samples: 88},
	{ID: "TR-02", Name: "임당역 사거리", Error: 3.2, Samples: 156},
}
